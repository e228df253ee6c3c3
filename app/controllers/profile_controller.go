package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/pkg/bind"
	"github.com/shashiranjanraj/tradeport/pkg/middleware"
	"github.com/shashiranjanraj/tradeport/pkg/response"
	"github.com/shashiranjanraj/tradeport/pkg/router"
)

// ProfileController exposes the seller onboarding endpoints: one save
// endpoint per step, the progress record, the profile bundle, and the
// submit action.
type ProfileController struct {
	onboarding *services.OnboardingService
}

func NewProfileController(onboarding *services.OnboardingService) *ProfileController {
	return &ProfileController{onboarding: onboarding}
}

func sellerID(r *http.Request) string {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		return ""
	}
	return claims.UserID
}

// Progress returns the seller's onboarding progress record.
func (c *ProfileController) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := c.onboarding.Progress(r.Context(), sellerID(r))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "progress lookup failed")
		return
	}
	response.Success(w, p)
}

// Profile returns every saved step document plus the progress record.
func (c *ProfileController) Profile(w http.ResponseWriter, r *http.Request) {
	data, err := c.onboarding.ProfileData(r.Context(), sellerID(r))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "profile lookup failed")
		return
	}
	response.Success(w, data)
}

// SaveBusiness stores the business step.
func (c *ProfileController) SaveBusiness(w http.ResponseWriter, r *http.Request) {
	var in models.BusinessDetails
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveBusiness(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// SaveContact stores the contact step.
func (c *ProfileController) SaveContact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactDetails
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveContact(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// SaveCategory stores the category-and-brand step.
func (c *ProfileController) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryBrand
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveCategory(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// SaveAddresses stores the billing and pickup addresses.
func (c *ProfileController) SaveAddresses(w http.ResponseWriter, r *http.Request) {
	var in models.AddressDetails
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveAddresses(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// SaveBank stores the settlement-account step.
func (c *ProfileController) SaveBank(w http.ResponseWriter, r *http.Request) {
	var in models.BankDetails
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveBank(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// SaveDocuments stores the KYC document URLs and parks the seller on review.
func (c *ProfileController) SaveDocuments(w http.ResponseWriter, r *http.Request) {
	var in models.DocumentSet
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveDocuments(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// CompleteWithDocuments stores the documents and forces the terminal
// progress record in one call, for the final wizard screen.
func (c *ProfileController) CompleteWithDocuments(w http.ResponseWriter, r *http.Request) {
	var in models.DocumentSet
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := c.onboarding.SaveDocumentsAndComplete(r.Context(), sellerID(r), &in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "save failed")
		return
	}
	response.Success(w, p)
}

// Submit marks the seller's profile as submitted for review.
func (c *ProfileController) Submit(w http.ResponseWriter, r *http.Request) {
	p, err := c.onboarding.SubmitForReview(r.Context(), sellerID(r))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "submit failed")
		return
	}
	response.Success(w, p)
}

// ─── Admin review endpoints ───

// ListSubmitted returns sellers awaiting review.
func (c *ProfileController) ListSubmitted(w http.ResponseWriter, r *http.Request) {
	sellers, err := c.onboarding.ListSubmitted(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	response.Success(w, sellers)
}

// SellerProfile returns the full profile bundle for one seller, for the
// admin review screen.
func (c *ProfileController) SellerProfile(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	data, err := c.onboarding.ProfileData(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "profile lookup failed")
		return
	}
	response.Success(w, data)
}

type reviewInput struct {
	Decision string `json:"decision" validate:"required,in=approve,reject"`
}

// Review records the admin's approve or reject decision.
func (c *ProfileController) Review(w http.ResponseWriter, r *http.Request) {
	var in reviewInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id := router.Param(r, "id")
	err := c.onboarding.Review(r.Context(), id, in.Decision == "approve")
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "review failed")
		return
	}
	response.Message(w, "review recorded")
}
