package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// TenantsAPI manages the tenants of the environment in context
type TenantsAPI struct {
	*base
}

// List retrieves a page of tenants
func (a *TenantsAPI) List(ctx context.Context, opts ...pagination.Option) ([]models.TenantRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.TenantRead
	if err := a.client.Get(ctx, fmt.Sprintf("%s?%s", a.factsBase("tenants"), pager.Query().Encode()), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// ListTenantUsers retrieves a page of the users associated with a tenant
func (a *TenantsAPI) ListTenantUsers(ctx context.Context, tenantKey string, opts ...pagination.Option) (*models.PaginatedResultUserRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.PaginatedResultUserRead
	path := fmt.Sprintf("%s?%s", joinPath(a.factsBase("tenants"), tenantKey, "users"), pager.Query().Encode())
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Get retrieves a tenant by its key (or id)
func (a *TenantsAPI) Get(ctx context.Context, tenantKey string) (*models.TenantRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.TenantRead
	if err := a.client.Get(ctx, joinPath(a.factsBase("tenants"), tenantKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves a tenant by its key.
// Alias for Get.
func (a *TenantsAPI) GetByKey(ctx context.Context, tenantKey string) (*models.TenantRead, error) {
	t, err := a.Get(ctx, tenantKey)
	return t, perr.Wrap(err)
}

// GetByID retrieves a tenant by its ID.
// Alias for Get.
func (a *TenantsAPI) GetByID(ctx context.Context, tenantID string) (*models.TenantRead, error) {
	t, err := a.Get(ctx, tenantID)
	return t, perr.Wrap(err)
}

// Create creates a new tenant
func (a *TenantsAPI) Create(ctx context.Context, tenantData models.TenantCreate) (*models.TenantRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := tenantData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.TenantRead
	if err := a.client.Post(ctx, a.factsBase("tenants"), tenantData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates a tenant
func (a *TenantsAPI) Update(ctx context.Context, tenantKey string, tenantData models.TenantUpdate) (*models.TenantRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.TenantRead
	if err := a.client.Patch(ctx, joinPath(a.factsBase("tenants"), tenantKey), tenantData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes a tenant
func (a *TenantsAPI) Delete(ctx context.Context, tenantKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("tenants"), tenantKey), nil))
}

// DeleteTenantUser deletes a user from a given tenant, removing all roles
// granted to the user in that tenant.
func (a *TenantsAPI) DeleteTenantUser(ctx context.Context, tenantKey, userKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("tenants"), tenantKey, "users", userKey), nil))
}
