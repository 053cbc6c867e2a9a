package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// UsersAPI manages the users of the environment in context
type UsersAPI struct {
	*base
}

// List retrieves a page of users in a paginated envelope
func (a *UsersAPI) List(ctx context.Context, opts ...pagination.Option) (*models.PaginatedResultUserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.PaginatedResultUserRead
	if err := a.client.Get(ctx, fmt.Sprintf("%s?%s", a.factsBase("users"), pager.Query().Encode()), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Get retrieves a user by its key (or id)
func (a *UsersAPI) Get(ctx context.Context, userKey string) (*models.UserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.UserRead
	if err := a.client.Get(ctx, joinPath(a.factsBase("users"), userKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves a user by its key.
// Alias for Get.
func (a *UsersAPI) GetByKey(ctx context.Context, userKey string) (*models.UserRead, error) {
	u, err := a.Get(ctx, userKey)
	return u, perr.Wrap(err)
}

// GetByID retrieves a user by its ID.
// Alias for Get.
func (a *UsersAPI) GetByID(ctx context.Context, userID string) (*models.UserRead, error) {
	u, err := a.Get(ctx, userID)
	return u, perr.Wrap(err)
}

// Create creates a new user
func (a *UsersAPI) Create(ctx context.Context, userData models.UserCreate) (*models.UserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := userData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.UserRead
	if err := a.client.Post(ctx, a.factsBase("users"), userData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates a user
func (a *UsersAPI) Update(ctx context.Context, userKey string, userData models.UserUpdate) (*models.UserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.UserRead
	if err := a.client.Patch(ctx, joinPath(a.factsBase("users"), userKey), userData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Sync creates the user if it doesn't exist, or updates it in place if it
// does (an upsert keyed by the user's key).
func (a *UsersAPI) Sync(ctx context.Context, userData models.UserCreate) (*models.UserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := userData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.UserRead
	if err := a.client.Put(ctx, joinPath(a.factsBase("users"), userData.Key), userData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes a user
func (a *UsersAPI) Delete(ctx context.Context, userKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("users"), userKey), nil))
}

// roleInTenant is the wire payload of the per-user role endpoints, which take
// the user from the URL rather than the body.
type roleInTenant struct {
	Role   string `json:"role"`
	Tenant string `json:"tenant"`
}

// AssignRole assigns a role to a user in the scope of a given tenant
func (a *UsersAPI) AssignRole(ctx context.Context, assignment models.RoleAssignmentCreate) (*models.RoleAssignmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := assignment.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleAssignmentRead
	body := roleInTenant{Role: assignment.Role, Tenant: assignment.Tenant}
	if err := a.client.Post(ctx, joinPath(a.factsBase("users"), assignment.User, "roles"), body, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// UnassignRole unassigns a role from a user in the scope of a given tenant
func (a *UsersAPI) UnassignRole(ctx context.Context, unassignment models.RoleAssignmentRemove) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}
	if err := unassignment.Validate(); err != nil {
		return perr.Wrap(err)
	}

	body := roleInTenant{Role: unassignment.Role, Tenant: unassignment.Tenant}
	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("users"), unassignment.User, "roles"), body))
}

// GetAssignedRoles retrieves the roles assigned to a user in a given tenant
// (if the tenant filter is non-empty) or across all tenants otherwise.
func (a *UsersAPI) GetAssignedRoles(ctx context.Context, userKey, tenantKey string, opts ...pagination.Option) ([]models.RoleAssignmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	query := pager.Query()
	query.Add("user", userKey)
	if tenantKey != "" {
		query.Add("tenant", tenantKey)
	}

	var resp []models.RoleAssignmentRead
	if err := a.client.Get(ctx, fmt.Sprintf("%s?%s", a.factsBase("role_assignments"), query.Encode()), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}
