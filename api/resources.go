package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// ResourcesAPI manages the resource types of the environment in context
type ResourcesAPI struct {
	*base
}

// List retrieves a page of resources
func (a *ResourcesAPI) List(ctx context.Context, opts ...pagination.Option) ([]models.ResourceRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.ResourceRead
	if err := a.client.Get(ctx, fmt.Sprintf("%s?%s", a.factsBase("resources"), pager.Query().Encode()), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Get retrieves a resource by its key (or id)
func (a *ResourcesAPI) Get(ctx context.Context, resourceKey string) (*models.ResourceRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceRead
	if err := a.client.Get(ctx, joinPath(a.factsBase("resources"), resourceKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves a resource by its key.
// Alias for Get.
func (a *ResourcesAPI) GetByKey(ctx context.Context, resourceKey string) (*models.ResourceRead, error) {
	r, err := a.Get(ctx, resourceKey)
	return r, perr.Wrap(err)
}

// GetByID retrieves a resource by its ID.
// Alias for Get.
func (a *ResourcesAPI) GetByID(ctx context.Context, resourceID string) (*models.ResourceRead, error) {
	r, err := a.Get(ctx, resourceID)
	return r, perr.Wrap(err)
}

// Create creates a new resource
func (a *ResourcesAPI) Create(ctx context.Context, resourceData models.ResourceCreate) (*models.ResourceRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := resourceData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceRead
	if err := a.client.Post(ctx, a.factsBase("resources"), resourceData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates a resource
func (a *ResourcesAPI) Update(ctx context.Context, resourceKey string, resourceData models.ResourceUpdate) (*models.ResourceRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceRead
	if err := a.client.Patch(ctx, joinPath(a.factsBase("resources"), resourceKey), resourceData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Replace fully replaces a resource definition
func (a *ResourcesAPI) Replace(ctx context.Context, resourceKey string, resourceData models.ResourceReplace) (*models.ResourceRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := resourceData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceRead
	if err := a.client.Put(ctx, joinPath(a.factsBase("resources"), resourceKey), resourceData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes a resource
func (a *ResourcesAPI) Delete(ctx context.Context, resourceKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("resources"), resourceKey), nil))
}
