package models

import (
	"time"

	"github.com/permitio/permit-golang/infra/perr"
)

// TenantCreate is the payload for creating a tenant
type TenantCreate struct {
	// Key is a URL-friendly identifier, unique within the environment
	Key         string     `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (t TenantCreate) Validate() error {
	if t.Key == "" {
		return perr.New("Key can't be empty")
	}
	if t.Name == "" {
		return perr.New("Name can't be empty")
	}
	return nil
}

// TenantUpdate is the PATCH payload for a tenant; nil fields are left unchanged
type TenantUpdate struct {
	Name        *string    `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// TenantRead is a tenant as returned by the API
type TenantRead struct {
	EnvObjectBase

	Key          string     `json:"key" yaml:"key"`
	Name         string     `json:"name" yaml:"name"`
	Description  *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Attributes   Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	LastActionAt time.Time  `json:"last_action_at,omitempty" yaml:"last_action_at,omitempty"`
}

// Validate implements Validateable
func (t TenantRead) Validate() error {
	if t.Key == "" {
		return perr.New("Key can't be empty")
	}
	return perr.Wrap(t.EnvObjectBase.Validate())
}
