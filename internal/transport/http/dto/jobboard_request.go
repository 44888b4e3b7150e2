package dto

import (
	"strings"
)

// -------- Accounts --------

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SignInRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	return runValidation(r)
}

type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateAccountRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	return runValidation(r)
}

// -------- Jobs --------

type CreateJobRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (r *CreateJobRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return runValidation(r)
}

type ApplyToJobRequest struct {
	UserExternalID string `json:"userExternalId" validate:"required,uuid4"`
}

func (r *ApplyToJobRequest) Validate() error {
	r.UserExternalID = strings.TrimSpace(r.UserExternalID)
	return runValidation(r)
}
