package config

import (
	"sync"

	"github.com/gofrs/uuid"
)

// APIKeyLevel is the authorization level of the configured API key. Endpoints
// declare the level they require and the SDK refuses calls made with a key of
// a different level.
type APIKeyLevel int

// API key levels, from unresolved to most specific
const (
	APIKeyLevelWaitForInit  APIKeyLevel = iota // scope not yet fetched from the API
	APIKeyLevelOrganization                    // key grants access to a whole organization
	APIKeyLevelProject                         // key grants access to a single project
	APIKeyLevelEnvironment                     // key grants access to a single environment
)

// String implements Stringer
func (l APIKeyLevel) String() string {
	switch l {
	case APIKeyLevelOrganization:
		return "organization-level"
	case APIKeyLevelProject:
		return "project-level"
	case APIKeyLevelEnvironment:
		return "environment-level"
	}
	return "uninitialized"
}

// APIContext records the scope the SDK is operating in, as inferred from the
// API key (or set manually by the caller).
type APIContext struct {
	mutex sync.RWMutex

	level          APIKeyLevel
	organizationID uuid.UUID
	projectID      uuid.UUID
	environmentID  uuid.UUID
}

// NewAPIContext returns an unresolved context; the first guarded API call
// will populate it from the API key scope.
func NewAPIContext() *APIContext {
	return &APIContext{level: APIKeyLevelWaitForInit}
}

// Level returns the current authorization level
func (c *APIContext) Level() APIKeyLevel {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.level
}

// OrganizationID returns the organization in context, or uuid.Nil
func (c *APIContext) OrganizationID() uuid.UUID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.organizationID
}

// ProjectID returns the project in context, or uuid.Nil
func (c *APIContext) ProjectID() uuid.UUID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.projectID
}

// EnvironmentID returns the environment in context, or uuid.Nil
func (c *APIContext) EnvironmentID() uuid.UUID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.environmentID
}

// SetOrganizationLevelContext scopes the SDK to a whole organization
func (c *APIContext) SetOrganizationLevelContext(organizationID uuid.UUID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.level = APIKeyLevelOrganization
	c.organizationID = organizationID
	c.projectID = uuid.Nil
	c.environmentID = uuid.Nil
}

// SetProjectLevelContext scopes the SDK to a single project
func (c *APIContext) SetProjectLevelContext(organizationID, projectID uuid.UUID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.level = APIKeyLevelProject
	c.organizationID = organizationID
	c.projectID = projectID
	c.environmentID = uuid.Nil
}

// SetEnvironmentLevelContext scopes the SDK to a single environment
func (c *APIContext) SetEnvironmentLevelContext(organizationID, projectID, environmentID uuid.UUID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.level = APIKeyLevelEnvironment
	c.organizationID = organizationID
	c.projectID = projectID
	c.environmentID = environmentID
}
