package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// ResourceAttributesAPI manages the attributes nested under a resource
type ResourceAttributesAPI struct {
	*base
}

// List retrieves a page of the attributes of a resource
func (a *ResourceAttributesAPI) List(ctx context.Context, resourceKey string, opts ...pagination.Option) ([]models.ResourceAttributeRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.ResourceAttributeRead
	path := fmt.Sprintf("%s?%s", joinPath(a.factsBase("resources"), resourceKey, "attributes"), pager.Query().Encode())
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Get retrieves an attribute by its key (or id)
func (a *ResourceAttributesAPI) Get(ctx context.Context, resourceKey, attributeKey string) (*models.ResourceAttributeRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceAttributeRead
	if err := a.client.Get(ctx, joinPath(a.factsBase("resources"), resourceKey, "attributes", attributeKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves an attribute by its key.
// Alias for Get.
func (a *ResourceAttributesAPI) GetByKey(ctx context.Context, resourceKey, attributeKey string) (*models.ResourceAttributeRead, error) {
	r, err := a.Get(ctx, resourceKey, attributeKey)
	return r, perr.Wrap(err)
}

// GetByID retrieves an attribute by its ID.
// Alias for Get.
func (a *ResourceAttributesAPI) GetByID(ctx context.Context, resourceID, attributeID string) (*models.ResourceAttributeRead, error) {
	r, err := a.Get(ctx, resourceID, attributeID)
	return r, perr.Wrap(err)
}

// Create creates a new attribute on a resource
func (a *ResourceAttributesAPI) Create(ctx context.Context, resourceKey string, attributeData models.ResourceAttributeCreate) (*models.ResourceAttributeRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := attributeData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceAttributeRead
	if err := a.client.Post(ctx, joinPath(a.factsBase("resources"), resourceKey, "attributes"), attributeData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates an attribute on a resource
func (a *ResourceAttributesAPI) Update(ctx context.Context, resourceKey, attributeKey string, attributeData models.ResourceAttributeUpdate) (*models.ResourceAttributeRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.ResourceAttributeRead
	if err := a.client.Patch(ctx, joinPath(a.factsBase("resources"), resourceKey, "attributes", attributeKey), attributeData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes an attribute from a resource
func (a *ResourceAttributesAPI) Delete(ctx context.Context, resourceKey, attributeKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.factsBase("resources"), resourceKey, "attributes", attributeKey), nil))
}
