package models

import (
	"net/mail"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
)

// UserCreate is the payload for creating (or syncing) a user
type UserCreate struct {
	// Key is the customer-side identifier of the user, unique within the environment
	Key        string     `json:"key" yaml:"key"`
	Email      string     `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName  string     `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (u UserCreate) Validate() error {
	if u.Key == "" {
		return perr.New("Key can't be empty")
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return perr.Friendlyf(err, "invalid email address '%s'", u.Email)
		}
	}
	return nil
}

// UserUpdate is the PATCH payload for a user; nil fields are left unchanged
type UserUpdate struct {
	Email      *string    `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName  *string    `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName   *string    `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// UserInTenant is a tenant association included in UserRead
type UserInTenant struct {
	Tenant string    `json:"tenant" yaml:"tenant"`
	Roles  []string  `json:"roles,omitempty" yaml:"roles,omitempty"`
	Status string    `json:"status,omitempty" yaml:"status,omitempty"`
	ID     uuid.UUID `json:"id,omitempty" yaml:"id,omitempty"`
}

// UserRoleRead is a compact role grant included in UserRead
type UserRoleRead struct {
	Role   string `json:"role" yaml:"role"`
	Tenant string `json:"tenant" yaml:"tenant"`
}

// UserRead is a user as returned by the API
type UserRead struct {
	EnvObjectBase

	Key               string         `json:"key" yaml:"key"`
	Email             string         `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName         string         `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName          string         `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Attributes        Attributes     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	AssociatedTenants []UserInTenant `json:"associated_tenants,omitempty" yaml:"associated_tenants,omitempty"`
	Roles             []UserRoleRead `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Validate implements Validateable
func (u UserRead) Validate() error {
	if u.Key == "" {
		return perr.New("Key can't be empty")
	}
	return perr.Wrap(u.EnvObjectBase.Validate())
}

// PaginatedResultUserRead is the paginated envelope returned by user listings
type PaginatedResultUserRead struct {
	Data []UserRead `json:"data"`
	pagination.ResponseFields
}
