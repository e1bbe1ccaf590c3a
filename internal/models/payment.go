package models

import "gorm.io/gorm"

// Payment statuses. A COMPLETED payment is immutable.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Payment is a monetary record tied to a user and application. Amount is
// in minor units of Currency. GatewayID and GatewayData are written by the
// external payment-gateway collaborator, never interpreted here.
type Payment struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null" json:"userId"`
	ApplicationID uint   `gorm:"index;not null" json:"applicationId"`
	Amount        int64  `gorm:"not null" json:"amount"`
	Currency      string `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	Status        string `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	GatewayID     string `json:"gatewayId,omitempty"`
	GatewayData   JSON   `gorm:"type:jsonb" json:"gatewayData,omitempty"`
}
