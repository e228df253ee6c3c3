package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bankInput struct {
	AccountNumber string  `json:"accountNumber" validate:"required,digits=14"`
	IFSC          string  `json:"ifsc"          validate:"required,size=11"`
	AccountType   string  `json:"accountType"   validate:"required,in=savings,current"`
	Email         string  `json:"email"         validate:"nullable,email"`
	Discount      float64 `json:"discount"      validate:"numeric,min=0,max=100"`
}

func TestStructPasses(t *testing.T) {
	errs := Struct(bankInput{
		AccountNumber: "12345678901234",
		IFSC:          "HDFC0001234",
		AccountType:   "savings",
		Discount:      15,
	})
	assert.Empty(t, errs)
}

func TestRequired(t *testing.T) {
	errs := Struct(bankInput{AccountType: "savings", IFSC: "HDFC0001234"})
	assert.Equal(t, "The accountNumber field is required.", errs["accountNumber"])
}

func TestDigits(t *testing.T) {
	errs := Struct(bankInput{
		AccountNumber: "12ab",
		IFSC:          "HDFC0001234",
		AccountType:   "savings",
	})
	assert.Equal(t, "The accountNumber must be 14 digits.", errs["accountNumber"])
}

func TestIn(t *testing.T) {
	errs := Struct(bankInput{
		AccountNumber: "12345678901234",
		IFSC:          "HDFC0001234",
		AccountType:   "overdraft",
	})
	assert.Equal(t, "The selected accountType is invalid.", errs["accountType"])
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	errs := Struct(bankInput{
		AccountNumber: "12345678901234",
		IFSC:          "HDFC0001234",
		AccountType:   "current",
		Email:         "",
	})
	assert.NotContains(t, errs, "email")

	errs = Struct(bankInput{
		AccountNumber: "12345678901234",
		IFSC:          "HDFC0001234",
		AccountType:   "current",
		Email:         "not-an-email",
	})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestNumericBounds(t *testing.T) {
	errs := Struct(bankInput{
		AccountNumber: "12345678901234",
		IFSC:          "HDFC0001234",
		AccountType:   "savings",
		Discount:      120,
	})
	assert.Equal(t, "The discount must not be greater than 100.", errs["discount"])
}

func TestSplitRulesKeepsInParams(t *testing.T) {
	rules := splitRules("required,in=savings,current,max=100")
	assert.Equal(t, []string{"required", "in=savings,current", "max=100"}, rules)
}
