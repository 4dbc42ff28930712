package models

import "time"

// Role is a staff review role.
type Role string

const (
	RoleResponsible Role = "responsible"
	RoleCompliance  Role = "compliance"
	RoleOCIC        Role = "ocic"
	RoleAdmin       Role = "admin"
)

// StaffUser is an internal reviewer. Role is immutable within a session
// and is the sole authorization input to review routing.
type StaffUser struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	AgencyID     string    `bson:"agencyId" json:"agencyId"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
