package models

import (
	"github.com/permitio/permit-golang/infra/perr"
)

// RoleCreate is the payload for creating a role
type RoleCreate struct {
	Key         string     `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	// Permissions this role grants, as "resource:action" strings
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	// Extends lists role keys whose permissions this role inherits
	Extends    []string   `json:"extends,omitempty" yaml:"extends,omitempty"`
	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (r RoleCreate) Validate() error {
	if r.Key == "" {
		return perr.New("Key can't be empty")
	}
	if r.Name == "" {
		return perr.New("Name can't be empty")
	}
	return nil
}

// RoleUpdate is the PATCH payload for a role; nil fields are left unchanged
type RoleUpdate struct {
	Name        *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Extends     []string `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// RoleRead is a role as returned by the API
type RoleRead struct {
	EnvObjectBase

	Key         string     `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions []string   `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Extends     []string   `json:"extends,omitempty" yaml:"extends,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (r RoleRead) Validate() error {
	if r.Key == "" {
		return perr.New("Key can't be empty")
	}
	return perr.Wrap(r.EnvObjectBase.Validate())
}

// AddRolePermissions is the payload for granting permissions to a role
type AddRolePermissions struct {
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// Validate implements Validateable
func (a AddRolePermissions) Validate() error {
	if len(a.Permissions) == 0 {
		return perr.New("Permissions can't be empty")
	}
	return nil
}

// RemoveRolePermissions is the payload for revoking permissions from a role
type RemoveRolePermissions struct {
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// Validate implements Validateable
func (r RemoveRolePermissions) Validate() error {
	if len(r.Permissions) == 0 {
		return perr.New("Permissions can't be empty")
	}
	return nil
}
