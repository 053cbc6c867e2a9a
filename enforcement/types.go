// Package enforcement implements permission checks against a local Policy
// Decision Point (PDP). The PDP is a sidecar that holds a synced copy of the
// policy and answers allow/deny queries with no round trip to the cloud.
package enforcement

import (
	"strings"

	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// Action is the name of an operation performed on a resource, e.g. "read"
type Action string

// User is the subject of a permission check
type User struct {
	Key       string            `json:"key"`
	FirstName string            `json:"first_name,omitempty"`
	LastName  string            `json:"last_name,omitempty"`
	Email     string            `json:"email,omitempty"`
	// Attributes participate in attribute-based policy rules
	Attributes models.Attributes `json:"attributes,omitempty"`
}

// UserBuilder constructs a check subject a field at a time
type UserBuilder struct {
	user User
}

// NewUser builds a check subject identified by key alone
func NewUser(key string) User {
	return User{Key: key}
}

// NewUserBuilder starts building a check subject from its key
func NewUserBuilder(key string) *UserBuilder {
	return &UserBuilder{user: User{Key: key}}
}

func (b *UserBuilder) WithFirstName(firstName string) *UserBuilder {
	b.user.FirstName = firstName
	return b
}

func (b *UserBuilder) WithLastName(lastName string) *UserBuilder {
	b.user.LastName = lastName
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithAttributes(attributes models.Attributes) *UserBuilder {
	b.user.Attributes = attributes
	return b
}

func (b *UserBuilder) Build() User {
	return b.user
}

// Resource is the object of a permission check
type Resource struct {
	// Type is the resource type's key as declared in the policy
	Type string `json:"type"`
	// Key identifies a specific instance; empty means the check is about the
	// resource type as a whole
	Key    string `json:"key,omitempty"`
	Tenant string `json:"tenant,omitempty"`
	// Attributes participate in attribute-based policy rules
	Attributes models.Attributes      `json:"attributes,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// NewResource builds a check object of the given type with no specific instance
func NewResource(resourceType string) Resource {
	return Resource{Type: resourceType}
}

// ResourceFromString parses "type" or "type:key" into a Resource
func ResourceFromString(s string) (Resource, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		return Resource{Type: parts[0]}, nil
	case 2:
		return Resource{Type: parts[0], Key: parts[1]}, nil
	default:
		return Resource{}, perr.Errorf("invalid resource string '%s', expected 'type' or 'type:key'", s)
	}
}

// ResourceBuilder constructs a check object a field at a time
type ResourceBuilder struct {
	resource Resource
}

// NewResourceBuilder starts building a check object from its type
func NewResourceBuilder(resourceType string) *ResourceBuilder {
	return &ResourceBuilder{resource: Resource{Type: resourceType}}
}

func (b *ResourceBuilder) WithKey(key string) *ResourceBuilder {
	b.resource.Key = key
	return b
}

func (b *ResourceBuilder) WithTenant(tenant string) *ResourceBuilder {
	b.resource.Tenant = tenant
	return b
}

func (b *ResourceBuilder) WithAttributes(attributes models.Attributes) *ResourceBuilder {
	b.resource.Attributes = attributes
	return b
}

func (b *ResourceBuilder) WithContext(context map[string]interface{}) *ResourceBuilder {
	b.resource.Context = context
	return b
}

func (b *ResourceBuilder) Build() Resource {
	return b.resource
}
