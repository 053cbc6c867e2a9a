package models

import (
	"github.com/permitio/permit-golang/infra/perr"
)

// UserLoginRequest asks the API to mint an embedded-login session for an end
// user of the customer's application.
type UserLoginRequest struct {
	// UserID accepts either the user's id or its key
	UserID string `json:"user_id" yaml:"user_id"`
	// TenantID accepts either the tenant's id or its key
	TenantID string `json:"tenant_id" yaml:"tenant_id"`
}

// Validate implements Validateable
func (r UserLoginRequest) Validate() error {
	if r.UserID == "" {
		return perr.New("UserID can't be empty")
	}
	if r.TenantID == "" {
		return perr.New("TenantID can't be empty")
	}
	return nil
}

// UserLoginResponse is the embedded-login session returned by the API
type UserLoginResponse struct {
	// Token to present when completing the login
	Token string `json:"token" yaml:"token"`
	// RedirectURL is the full URL to which the user should be redirected in
	// order to complete the login process
	RedirectURL string `json:"redirect_url" yaml:"redirect_url"`
	// Content is an optional body to serve back to the frontend as-is
	Content map[string]interface{} `json:"content,omitempty" yaml:"content,omitempty"`
}
