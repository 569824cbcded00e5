package types

import "github.com/go-playground/validator/v10"

// CreateSiteRequest represents the request to register a domain for tracking.
type CreateSiteRequest struct {
	Domain       string `json:"domain" validate:"required,min=3"`
	BusinessName string `json:"business_name,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Stage        string `json:"stage,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateSiteRequest represents an edit to a site's mutable business metadata.
type UpdateSiteRequest struct {
	BusinessName *string `json:"business_name,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Zip          *string `json:"zip,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Stage        *string `json:"stage,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SprintRequestInput represents a sprint request submission.
type SprintRequestInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// Validate validates the CreateSiteRequest using the validator.
func (r *CreateSiteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SprintRequestInput using the validator.
func (r *SprintRequestInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
