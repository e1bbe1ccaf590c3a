package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the authorization role carried by a user and their tokens.
type Role string

const (
	RoleApplicant  Role = "APPLICANT"
	RoleConsultant Role = "CONSULTANT"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// roleRank orders roles for least-privilege checks.
var roleRank = map[Role]int{
	RoleApplicant:  1,
	RoleConsultant: 2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// Valid reports whether the role is a member of the enumeration.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role ranks at or above the required role.
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// IsReviewer reports whether the role may review applications and documents.
func (r Role) IsReviewer() bool {
	return r.AtLeast(RoleConsultant)
}

// User account statuses. Users are never hard-deleted; only status moves.
const (
	UserStatusActive      = "ACTIVE"
	UserStatusSuspended   = "SUSPENDED"
	UserStatusDeactivated = "DEACTIVATED"
)

type User struct {
	gorm.Model
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	Phone        string     `json:"phone"`
	Role         Role       `gorm:"type:varchar(20);default:'APPLICANT'" json:"role"`
	Status       string     `gorm:"default:'ACTIVE'" json:"status"`
	ConsentGiven bool       `gorm:"default:false" json:"consentGiven"`
	Preferences  JSON       `gorm:"type:jsonb" json:"preferences,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	TokenVersion int        `gorm:"default:1" json:"-"`

	Applications  []Application  `gorm:"foreignKey:UserID" json:"applications,omitempty"`
	Documents     []Document     `gorm:"foreignKey:UserID" json:"documents,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:UserID" json:"payments,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
