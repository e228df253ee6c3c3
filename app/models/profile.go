package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Per-step profile documents. Each collection holds one document per seller,
// upserted whenever the seller saves that tab of the onboarding form.

// BusinessDetails is the legal-entity step.
type BusinessDetails struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID           string             `bson:"sellerId" json:"sellerId"`
	LegalEntityName    string             `bson:"legalEntityName" json:"legalEntityName" validate:"required,min=2,max=200"`
	TradeName          string             `bson:"tradeName" json:"tradeName" validate:"required,min=2,max=200"`
	GSTIN              string             `bson:"gstin" json:"gstin" validate:"required,size=15"`
	Country            string             `bson:"country" json:"country" validate:"required"`
	Pincode            string             `bson:"pincode" json:"pincode" validate:"required,digits=6"`
	State              string             `bson:"state" json:"state" validate:"required"`
	City               string             `bson:"city" json:"city" validate:"required"`
	BusinessEntityType string             `bson:"businessEntityType" json:"businessEntityType" validate:"required"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContactDetails is the contact-person step.
type ContactDetails struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID    string             `bson:"sellerId" json:"sellerId"`
	ContactName string             `bson:"contactName" json:"contactName" validate:"required,min=2,max=100"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber" validate:"required,digits=10"`
	EmailID     string             `bson:"emailId" json:"emailId" validate:"required,email"`
	PickupTime  string             `bson:"pickupTime" json:"pickupTime" validate:"nullable,max=50"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CategoryBrand is the category-and-brand step.
type CategoryBrand struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID         string             `bson:"sellerId" json:"sellerId"`
	Categories       []string           `bson:"categories" json:"categories" validate:"required"`
	AuthorizedBrands []string           `bson:"authorizedBrands" json:"authorizedBrands"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Address is one postal address block.
type Address struct {
	Country      string `bson:"country" json:"country" validate:"required"`
	State        string `bson:"state" json:"state" validate:"required"`
	City         string `bson:"city" json:"city" validate:"required"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1" validate:"required"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	PhoneNumber  string `bson:"phoneNumber" json:"phoneNumber" validate:"required,digits=10"`
}

// AddressDetails is the addresses step: billing plus pickup.
type AddressDetails struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID       string             `bson:"sellerId" json:"sellerId"`
	BillingAddress Address            `bson:"billingAddress" json:"billingAddress"`
	PickupAddress  Address            `bson:"pickupAddress" json:"pickupAddress"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BankDetails is the settlement-account step.
type BankDetails struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID          string             `bson:"sellerId" json:"sellerId"`
	AccountHolderName string             `bson:"accountHolderName" json:"accountHolderName" validate:"required,min=2,max=100"`
	AccountNumber     string             `bson:"accountNumber" json:"accountNumber" validate:"required,min=9,max=18"`
	IFSCCode          string             `bson:"ifscCode" json:"ifscCode" validate:"required,size=11"`
	BankName          string             `bson:"bankName" json:"bankName" validate:"required"`
	Branch            string             `bson:"branch" json:"branch" validate:"required"`
	City              string             `bson:"city" json:"city" validate:"required"`
	AccountType       string             `bson:"accountType" json:"accountType" validate:"required,in=savings,current"`
	BankLetterURL     string             `bson:"bankLetterUrl,omitempty" json:"bankLetterUrl,omitempty"`
	IsVerified        bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DocumentSet is the KYC document step. Each field stores the storage URL of
// an uploaded file.
type DocumentSet struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID                  string             `bson:"sellerId" json:"sellerId"`
	PANCardURL                string             `bson:"panCardUrl" json:"panCardUrl"`
	AadharCardURL             string             `bson:"aadharCardUrl" json:"aadharCardUrl"`
	GSTINURL                  string             `bson:"gstinUrl,omitempty" json:"gstinUrl,omitempty"`
	BankLetterURL             string             `bson:"bankLetterUrl,omitempty" json:"bankLetterUrl,omitempty"`
	BankStatementURL          string             `bson:"bankStatementUrl,omitempty" json:"bankStatementUrl,omitempty"`
	CorporationCertificateURL string             `bson:"corporationCertificateUrl,omitempty" json:"corporationCertificateUrl,omitempty"`
	BusinessAddressURL        string             `bson:"businessAddressUrl,omitempty" json:"businessAddressUrl,omitempty"`
	PickupAddressProofURL     string             `bson:"pickupAddressProofUrl,omitempty" json:"pickupAddressProofUrl,omitempty"`
	SignatureURL              string             `bson:"signatureUrl,omitempty" json:"signatureUrl,omitempty"`
	BalanceSheet2223URL       string             `bson:"balanceSheet2223Url,omitempty" json:"balanceSheet2223Url,omitempty"`
	BalanceSheet2324URL       string             `bson:"balanceSheet2324Url,omitempty" json:"balanceSheet2324Url,omitempty"`
	CreatedAt                 time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                 time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileData bundles every step document for the profile summary screen.
// Absent steps are nil.
type ProfileData struct {
	Business  *BusinessDetails    `json:"business,omitempty"`
	Contact   *ContactDetails     `json:"contact,omitempty"`
	Category  *CategoryBrand      `json:"category,omitempty"`
	Addresses *AddressDetails     `json:"addresses,omitempty"`
	Bank      *BankDetails        `json:"bank,omitempty"`
	Documents *DocumentSet        `json:"documents,omitempty"`
	Progress  *OnboardingProgress `json:"progress,omitempty"`
}
