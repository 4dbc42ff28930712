package models

import "time"

// Client type discriminator. The type decides which nested collections
// are populated: natural clients never carry representatives or owners.
const (
	ClientTypeNatural = "natural"
	ClientTypeLegal   = "legal"
)

// Client represents a natural person or legal entity that submits KYC data.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Code      string    `bson:"code" json:"code"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Type      string    `bson:"type" json:"type"`
	AgencyID  string    `bson:"agencyId" json:"agencyId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Populated for legal entities only.
	Representatives  []Representative  `bson:"representatives,omitempty" json:"representatives,omitempty"`
	BeneficialOwners []BeneficialOwner `bson:"beneficialOwners,omitempty" json:"beneficialOwners,omitempty"`
}

// Representative is a person authorized to act for a legal entity.
type Representative struct {
	Name string `bson:"name" json:"name"`
}

// BeneficialOwner is an ultimate beneficial owner of a legal entity.
type BeneficialOwner struct {
	Name            string  `bson:"name" json:"name"`
	DirectPercent   float64 `bson:"directPercent" json:"directPercent"`
	IndirectPercent float64 `bson:"indirectPercent" json:"indirectPercent"`
}
