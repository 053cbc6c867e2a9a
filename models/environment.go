package models

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/perr"
)

// EnvironmentCreate is the payload for creating an environment inside a project
type EnvironmentCreate struct {
	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate implements Validateable
func (e EnvironmentCreate) Validate() error {
	if e.Key == "" {
		return perr.New("Key can't be empty")
	}
	if e.Name == "" {
		return perr.New("Name can't be empty")
	}
	return nil
}

// EnvironmentUpdate is the PATCH payload for an environment
type EnvironmentUpdate struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EnvironmentRead is an environment as returned by the API
type EnvironmentRead struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	OrganizationID uuid.UUID `json:"organization_id" yaml:"organization_id"`
	ProjectID      uuid.UUID `json:"project_id" yaml:"project_id"`

	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Validate implements Validateable
func (e EnvironmentRead) Validate() error {
	if e.ID == uuid.Nil {
		return perr.New("EnvironmentRead can't have nil ID")
	}
	if e.Key == "" {
		return perr.New("Key can't be empty")
	}
	return nil
}

// EnvironmentStats is an environment plus usage counters
type EnvironmentStats struct {
	EnvironmentRead

	UserCount           int `json:"user_count" yaml:"user_count"`
	TenantCount         int `json:"tenant_count" yaml:"tenant_count"`
	RoleCount           int `json:"role_count" yaml:"role_count"`
	ResourceCount       int `json:"resource_count" yaml:"resource_count"`
	RoleAssignmentCount int `json:"role_assignment_count" yaml:"role_assignment_count"`
}

// EnvironmentCopyTarget names the environment an existing one is copied to
type EnvironmentCopyTarget struct {
	Key         string  `json:"key" yaml:"key"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EnvironmentCopy is the payload for copying one environment's policy into another
type EnvironmentCopy struct {
	TargetEnv EnvironmentCopyTarget `json:"target_env" yaml:"target_env"`
	// ConflictStrategy is "fail" (default) or "overwrite"
	ConflictStrategy *string `json:"conflict_strategy,omitempty" yaml:"conflict_strategy,omitempty"`
}

// Validate implements Validateable
func (e EnvironmentCopy) Validate() error {
	if e.TargetEnv.Key == "" {
		return perr.New("TargetEnv.Key can't be empty")
	}
	if e.ConflictStrategy != nil && *e.ConflictStrategy != "fail" && *e.ConflictStrategy != "overwrite" {
		return perr.Errorf("ConflictStrategy must be 'fail' or 'overwrite', got '%s'", *e.ConflictStrategy)
	}
	return nil
}
