// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/apperr"
	"github.com/shulsign/onboarding/internal/services/signup"
)

var validate = validator.New()

// SignupRequest is the request body for signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName" validate:"required"`
	Company  string `json:"company"`
	Website  string `json:"website"`
	Services string `json:"services"`
}

// Signup issues two magic link tokens for the given identity and attempts
// delivery by email.
func (h *Handlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.Validation("Invalid request body."))
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return writeError(c, apperr.Validation(signupFieldMessage(fieldErrs)))
		}
		return writeError(c, apperr.Validation("Invalid request body."))
	}

	result, err := h.signup.Signup(c.Request().Context(), signup.Request{
		Email:    req.Email,
		Phone:    req.Phone,
		FullName: req.FullName,
		Company:  req.Company,
		Website:  req.Website,
		Services: req.Services,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// signupFieldMessage maps the first struct validation failure to the
// user-facing message of the field.
func signupFieldMessage(errs validator.ValidationErrors) string {
	for _, fe := range errs {
		switch fe.Field() {
		case "Email":
			if fe.Tag() == "required" {
				return "Email is required."
			}
			return "Enter a valid email address."
		case "FullName":
			return "Full name is required."
		}
	}
	return "Invalid request body."
}
