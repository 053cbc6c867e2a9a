package models

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/perr"
)

// RoleAssignmentCreate grants a role to a user in the scope of a tenant.
// Role, tenant and user each accept either the object's id or its key.
type RoleAssignmentCreate struct {
	Role   string `json:"role" yaml:"role"`
	Tenant string `json:"tenant" yaml:"tenant"`
	User   string `json:"user" yaml:"user"`
}

// Validate implements Validateable
func (r RoleAssignmentCreate) Validate() error {
	if r.Role == "" {
		return perr.New("Role can't be empty")
	}
	if r.Tenant == "" {
		return perr.New("Tenant can't be empty")
	}
	if r.User == "" {
		return perr.New("User can't be empty")
	}
	return nil
}

// RoleAssignmentRemove revokes a role from a user in the scope of a tenant
type RoleAssignmentRemove struct {
	Role   string `json:"role" yaml:"role"`
	Tenant string `json:"tenant" yaml:"tenant"`
	User   string `json:"user" yaml:"user"`
}

// Validate implements Validateable
func (r RoleAssignmentRemove) Validate() error {
	if r.Role == "" {
		return perr.New("Role can't be empty")
	}
	if r.Tenant == "" {
		return perr.New("Tenant can't be empty")
	}
	if r.User == "" {
		return perr.New("User can't be empty")
	}
	return nil
}

// RoleAssignmentRead is a role grant as returned by the API
type RoleAssignmentRead struct {
	ID uuid.UUID `json:"id" yaml:"id"`

	User   string `json:"user" yaml:"user"`
	Role   string `json:"role" yaml:"role"`
	Tenant string `json:"tenant" yaml:"tenant"`

	UserID   uuid.UUID `json:"user_id" yaml:"user_id"`
	RoleID   uuid.UUID `json:"role_id" yaml:"role_id"`
	TenantID uuid.UUID `json:"tenant_id" yaml:"tenant_id"`

	OrganizationID uuid.UUID `json:"organization_id" yaml:"organization_id"`
	ProjectID      uuid.UUID `json:"project_id" yaml:"project_id"`
	EnvironmentID  uuid.UUID `json:"environment_id" yaml:"environment_id"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// BulkRoleAssignmentReport is returned by the bulk assign endpoint
type BulkRoleAssignmentReport struct {
	AssignmentsCreated int `json:"assignments_created"`
}

// BulkRoleUnAssignmentReport is returned by the bulk unassign endpoint
type BulkRoleUnAssignmentReport struct {
	AssignmentsRemoved int `json:"assignments_removed"`
}
