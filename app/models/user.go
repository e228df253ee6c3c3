package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account types.
const (
	UserSeller = "seller"
	UserAdmin  = "admin"
	UserBuyer  = "buyer"
)

// Onboarding status values stamped on the user record.
const (
	OnboardingPending       = "pending"
	OnboardingLightDone     = "light_completed"
	OnboardingFullCompleted = "full_completed"
	OnboardingApproved      = "approved"
	OnboardingRejected      = "rejected"
)

// User is the account record shared by buyers, sellers, and admins.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"` // bcrypt hash, never serialised
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Type             string             `bson:"type" json:"type"`
	OnboardingStatus string             `bson:"onboardingStatus,omitempty" json:"onboardingStatus,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
