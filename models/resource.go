package models

import (
	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/infra/perr"
)

// ActionBlockEditable describes one action on a resource in create/update payloads
type ActionBlockEditable struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ActionBlockRead describes one action on a resource as returned by the API
type ActionBlockRead struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        *string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// AttributeBlockEditable describes one attribute on a resource in create/update payloads
type AttributeBlockEditable struct {
	// Type is one of "bool", "number", "string", "time", "array", "json"
	Type        string  `json:"type" yaml:"type"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AttributeBlockRead describes one attribute on a resource as returned by the API
type AttributeBlockRead struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// ResourceCreate is the payload for creating a resource type
type ResourceCreate struct {
	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	URN         *string `json:"urn,omitempty" yaml:"urn,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	// Actions maps action key to its definition; every resource must expose at least one
	Actions    map[string]ActionBlockEditable    `json:"actions" yaml:"actions"`
	Attributes map[string]AttributeBlockEditable `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (r ResourceCreate) Validate() error {
	if r.Key == "" {
		return perr.New("Key can't be empty")
	}
	if r.Name == "" {
		return perr.New("Name can't be empty")
	}
	if len(r.Actions) == 0 {
		return perr.New("a resource must declare at least one action")
	}
	return nil
}

// ResourceUpdate is the PATCH payload for a resource; nil fields are left unchanged
type ResourceUpdate struct {
	Name        *string                           `json:"name,omitempty" yaml:"name,omitempty"`
	URN         *string                           `json:"urn,omitempty" yaml:"urn,omitempty"`
	Description *string                           `json:"description,omitempty" yaml:"description,omitempty"`
	Actions     map[string]ActionBlockEditable    `json:"actions,omitempty" yaml:"actions,omitempty"`
	Attributes  map[string]AttributeBlockEditable `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ResourceReplace is the PUT payload for a resource; unlike ResourceUpdate it
// fully replaces the resource definition.
type ResourceReplace struct {
	Name        string                            `json:"name" yaml:"name"`
	URN         *string                           `json:"urn,omitempty" yaml:"urn,omitempty"`
	Description *string                           `json:"description,omitempty" yaml:"description,omitempty"`
	Actions     map[string]ActionBlockEditable    `json:"actions" yaml:"actions"`
	Attributes  map[string]AttributeBlockEditable `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (r ResourceReplace) Validate() error {
	if r.Name == "" {
		return perr.New("Name can't be empty")
	}
	if len(r.Actions) == 0 {
		return perr.New("a resource must declare at least one action")
	}
	return nil
}

// ResourceRead is a resource type as returned by the API
type ResourceRead struct {
	EnvObjectBase

	Key         string                        `json:"key" yaml:"key"`
	Name        string                        `json:"name" yaml:"name"`
	URN         *string                       `json:"urn,omitempty" yaml:"urn,omitempty"`
	Description *string                       `json:"description,omitempty" yaml:"description,omitempty"`
	Actions     map[string]ActionBlockRead    `json:"actions,omitempty" yaml:"actions,omitempty"`
	Attributes  map[string]AttributeBlockRead `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Validate implements Validateable
func (r ResourceRead) Validate() error {
	if r.Key == "" {
		return perr.New("Key can't be empty")
	}
	return perr.Wrap(r.EnvObjectBase.Validate())
}

// ResourceActionCreate is the payload for creating an action on a resource
type ResourceActionCreate struct {
	Key         string  `json:"key" yaml:"key"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate implements Validateable
func (a ResourceActionCreate) Validate() error {
	if a.Key == "" {
		return perr.New("Key can't be empty")
	}
	if a.Name == "" {
		return perr.New("Name can't be empty")
	}
	return nil
}

// ResourceActionUpdate is the PATCH payload for a resource action
type ResourceActionUpdate struct {
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ResourceActionRead is an action on a resource as returned by the API
type ResourceActionRead struct {
	EnvObjectBase

	Key         string    `json:"key" yaml:"key"`
	Name        string    `json:"name" yaml:"name"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	ResourceID  uuid.UUID `json:"resource_id" yaml:"resource_id"`
	// PermissionName is the fully qualified "resource:action" name
	PermissionName string `json:"permission_name,omitempty" yaml:"permission_name,omitempty"`
}

// ResourceAttributeCreate is the payload for creating an attribute on a resource
type ResourceAttributeCreate struct {
	Key         string  `json:"key" yaml:"key"`
	Type        string  `json:"type" yaml:"type"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate implements Validateable
func (a ResourceAttributeCreate) Validate() error {
	if a.Key == "" {
		return perr.New("Key can't be empty")
	}
	if a.Type == "" {
		return perr.New("Type can't be empty")
	}
	return nil
}

// ResourceAttributeUpdate is the PATCH payload for a resource attribute
type ResourceAttributeUpdate struct {
	Type        *string `json:"type,omitempty" yaml:"type,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ResourceAttributeRead is an attribute on a resource as returned by the API
type ResourceAttributeRead struct {
	EnvObjectBase

	Key         string    `json:"key" yaml:"key"`
	Type        string    `json:"type" yaml:"type"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	ResourceID  uuid.UUID `json:"resource_id" yaml:"resource_id"`
	ResourceKey string    `json:"resource_key,omitempty" yaml:"resource_key,omitempty"`
}
