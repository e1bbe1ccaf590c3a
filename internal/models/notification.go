package models

import "gorm.io/gorm"

// Notification channels.
const (
	ChannelEmail = "EMAIL"
	ChannelSMS   = "SMS"
	ChannelPush  = "PUSH"
	ChannelInApp = "IN_APP"
)

// Notification delivery statuses. Rows are consumed by an external
// dispatcher which flips PENDING to DELIVERED or FAILED.
const (
	NotificationPending   = "PENDING"
	NotificationDelivered = "DELIVERED"
	NotificationFailed    = "FAILED"
)

// Notification is a fire-and-forget message record addressed to a user.
// Created by mutating operations; only Status changes after creation.
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Channel string `gorm:"type:varchar(10);default:'IN_APP'" json:"channel"`
	Subject string `gorm:"not null" json:"subject"`
	Body    string `json:"body"`
	Status  string `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
}
