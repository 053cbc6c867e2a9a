package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// ResourceActionsAPI manages the actions nested under a resource
type ResourceActionsAPI struct {
	*base
}

// List retrieves a page of the actions of a resource
func (a *ResourceActionsAPI) List(ctx context.Context, resourceKey string, opts ...pagination.Option) ([]models.ResourceActionRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.ResourceActionRead
	path := fmt.Sprintf("%s?%s", joinPath(a.factsBase("resources"), resourceKey, "actions"), pager.Query().Encode())
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Get retrieves an action by its key (or id)
func (a *ResourceActionsAPI) Get(ctx context.Context, resourceKey, actionKey string) (*models.ResourceActionRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceActionRead
	if err := a.client.Get(ctx, joinPath(a.factsBase("resources"), resourceKey, "actions", actionKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves an action by its key.
// Alias for Get.
func (a *ResourceActionsAPI) GetByKey(ctx context.Context, resourceKey, actionKey string) (*models.ResourceActionRead, error) {
	r, err := a.Get(ctx, resourceKey, actionKey)
	return r, perr.Wrap(err)
}

// GetByID retrieves an action by its ID.
// Alias for Get.
func (a *ResourceActionsAPI) GetByID(ctx context.Context, resourceID, actionID string) (*models.ResourceActionRead, error) {
	r, err := a.Get(ctx, resourceID, actionID)
	return r, perr.Wrap(err)
}

// Create creates a new action on a resource
func (a *ResourceActionsAPI) Create(ctx context.Context, resourceKey string, actionData models.ResourceActionCreate) (*models.ResourceActionRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := actionData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceActionRead
	if err := a.client.Post(ctx, joinPath(a.factsBase("resources"), resourceKey, "actions"), actionData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates an action on a resource
func (a *ResourceActionsAPI) Update(ctx context.Context, resourceKey, actionKey string, actionData models.ResourceActionUpdate) (*models.ResourceActionRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceActionRead
	if err := a.client.Patch(ctx, joinPath(a.factsBase("resources"), resourceKey, "actions", actionKey), actionData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes an action from a resource
func (a *ResourceActionsAPI) Delete(ctx context.Context, resourceKey, actionKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("resources"), resourceKey, "actions", actionKey), nil))
}
