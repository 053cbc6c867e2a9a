package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// RolesAPI manages the role definitions of the environment in context
type RolesAPI struct {
	*base
}

// List retrieves a page of roles
func (a *RolesAPI) List(ctx context.Context, opts ...pagination.Option) ([]models.RoleRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.RoleRead
	if err := a.client.Get(ctx, fmt.Sprintf("%s?%s", a.schemaBase("roles"), pager.Query().Encode()), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Get retrieves a role by its key (or id)
func (a *RolesAPI) Get(ctx context.Context, roleKey string) (*models.RoleRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleRead
	if err := a.client.Get(ctx, joinPath(a.schemaBase("roles"), roleKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves a role by its key.
// Alias for Get.
func (a *RolesAPI) GetByKey(ctx context.Context, roleKey string) (*models.RoleRead, error) {
	r, err := a.Get(ctx, roleKey)
	return r, perr.Wrap(err)
}

// GetByID retrieves a role by its ID.
// Alias for Get.
func (a *RolesAPI) GetByID(ctx context.Context, roleID string) (*models.RoleRead, error) {
	r, err := a.Get(ctx, roleID)
	return r, perr.Wrap(err)
}

// Create creates a new role
func (a *RolesAPI) Create(ctx context.Context, roleData models.RoleCreate) (*models.RoleRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := roleData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleRead
	if err := a.client.Post(ctx, a.schemaBase("roles"), roleData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates a role
func (a *RolesAPI) Update(ctx context.Context, roleKey string, roleData models.RoleUpdate) (*models.RoleRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleRead
	if err := a.client.Patch(ctx, joinPath(a.schemaBase("roles"), roleKey), roleData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes a role
func (a *RolesAPI) Delete(ctx context.Context, roleKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.schemaBase("roles"), roleKey), nil))
}

// AssignPermissions grants permissions ("resource:action" strings) to a role
func (a *RolesAPI) AssignPermissions(ctx context.Context, roleKey string, permissions []string) (*models.RoleRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	body := models.AddRolePermissions{Permissions: permissions}
	if err := body.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleRead
	if err := a.client.Post(ctx, joinPath(a.schemaBase("roles"), roleKey, "permissions"), body, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// RemovePermissions revokes permissions ("resource:action" strings) from a role
func (a *RolesAPI) RemovePermissions(ctx context.Context, roleKey string, permissions []string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	body := models.RemoveRolePermissions{Permissions: permissions}
	if err := body.Validate(); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.schemaBase("roles"), roleKey, "permissions"), body))
}
