package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/repositories"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/pkg/bind"
	"github.com/shashiranjanraj/tradeport/pkg/middleware"
	"github.com/shashiranjanraj/tradeport/pkg/response"
)

// AuthController handles registration, login, and token refresh.
type AuthController struct {
	auth  *services.AuthService
	users *repositories.UserRepository
}

func NewAuthController(auth *services.AuthService, users *repositories.UserRepository) *AuthController {
	return &AuthController{auth: auth, users: users}
}

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Type     string `json:"type" validate:"required,in=seller,buyer"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Register creates a new seller or buyer account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	u, err := c.auth.Register(r.Context(), in.Name, in.Email, in.Password, in.Type)
	if errors.Is(err, repositories.ErrEmailTaken) {
		response.Error(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}
	response.Created(w, u)
}

// Login verifies credentials and returns the user with a token pair.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	u, pair, err := c.auth.Login(r.Context(), in.Email, in.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	response.Success(w, map[string]interface{}{
		"user":   u,
		"tokens": pair,
	})
}

// Refresh exchanges a refresh token for a fresh pair.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.auth.Refresh(in.RefreshToken)
	if err != nil {
		response.Unauthorized(w)
		return
	}
	response.Success(w, pair)
}

// Me returns the authenticated user's account.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	u, err := c.users.FindByID(r.Context(), claims.UserID)
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	response.Success(w, u)
}
