// Package models defines the wire models of the Permit REST API.
package models

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/perr"
)

// EnvObjectBase underlies all models that live inside a single environment
type EnvObjectBase struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	OrganizationID uuid.UUID `json:"organization_id" yaml:"organization_id"`
	ProjectID      uuid.UUID `json:"project_id" yaml:"project_id"`
	EnvironmentID  uuid.UUID `json:"environment_id" yaml:"environment_id"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate implements Validateable
func (b EnvObjectBase) Validate() error {
	if b.ID == uuid.Nil {
		return perr.New("EnvObjectBase can't have nil ID")
	}
	return nil
}

// Attributes is a free-form bag of extra data attached to users, tenants and resources
type Attributes map[string]interface{}

// APIKeyScopeRead is the scope of the configured API key, returned by
// GET /v2/api-key/scope. Project and environment are only present for keys
// scoped below the organization.
type APIKeyScopeRead struct {
	OrganizationID uuid.UUID  `json:"organization_id" yaml:"organization_id"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	EnvironmentID  *uuid.UUID `json:"environment_id,omitempty" yaml:"environment_id,omitempty"`
}

// APIKeyRead is a management view of an API key
type APIKeyRead struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	OrganizationID uuid.UUID `json:"organization_id" yaml:"organization_id"`
	// Secret is the raw key; only returned to project-level callers
	Secret     string    `json:"secret,omitempty" yaml:"secret,omitempty"`
	ObjectType string    `json:"object_type,omitempty" yaml:"object_type,omitempty"`
	ObjectID   uuid.UUID `json:"object_id,omitempty" yaml:"object_id,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// ValidationError is a single field error inside HTTPValidationError
type ValidationError struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

// HTTPValidationError is the 422 response body of the REST API
type HTTPValidationError struct {
	Detail []ValidationError `json:"detail,omitempty"`
}
