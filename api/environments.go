package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// EnvironmentsAPI manages the environments of the project in context.
// Unlike the other APIs it requires a project-level API key.
type EnvironmentsAPI struct {
	*base
}

// envsBase is the root of the environment endpoints for the project in context
func (a *EnvironmentsAPI) envsBase() string {
	return fmt.Sprintf("/v2/projects/%v/envs", a.config.Context().ProjectID())
}

// List retrieves a page of the environments of the project in context
func (a *EnvironmentsAPI) List(ctx context.Context, opts ...pagination.Option) ([]models.EnvironmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	var resp []models.EnvironmentRead
	path := fmt.Sprintf("%s?%s", a.envsBase(), pager.Query().Encode())
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Get retrieves an environment by its key (or id)
func (a *EnvironmentsAPI) Get(ctx context.Context, environmentKey string) (*models.EnvironmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.EnvironmentRead
	if err := a.client.Get(ctx, joinPath(a.envsBase(), environmentKey), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetByKey retrieves an environment by its key.
// Alias for Get.
func (a *EnvironmentsAPI) GetByKey(ctx context.Context, environmentKey string) (*models.EnvironmentRead, error) {
	e, err := a.Get(ctx, environmentKey)
	return e, perr.Wrap(err)
}

// GetByID retrieves an environment by its ID.
// Alias for Get.
func (a *EnvironmentsAPI) GetByID(ctx context.Context, environmentID string) (*models.EnvironmentRead, error) {
	e, err := a.Get(ctx, environmentID)
	return e, perr.Wrap(err)
}

// GetStats retrieves an environment together with its usage counters
func (a *EnvironmentsAPI) GetStats(ctx context.Context, environmentKey string) (*models.EnvironmentStats, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.EnvironmentStats
	if err := a.client.Get(ctx, joinPath(a.envsBase(), environmentKey, "stats"), &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// GetAPIKey retrieves the environment-level API key of an environment.
// The key's secret is only returned to project-level callers.
func (a *EnvironmentsAPI) GetAPIKey(ctx context.Context, environmentKey string) (*models.APIKeyRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.APIKeyRead
	path := fmt.Sprintf("/v2/api-key/%v/%s", a.config.Context().ProjectID(), environmentKey)
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Create creates a new environment in the project in context
func (a *EnvironmentsAPI) Create(ctx context.Context, environmentData models.EnvironmentCreate) (*models.EnvironmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := environmentData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.EnvironmentRead
	if err := a.client.Post(ctx, a.envsBase(), environmentData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Update partially updates an environment
func (a *EnvironmentsAPI) Update(ctx context.Context, environmentKey string, environmentData models.EnvironmentUpdate) (*models.EnvironmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.EnvironmentRead
	if err := a.client.Patch(ctx, joinPath(a.envsBase(), environmentKey), environmentData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Copy clones an environment's full policy into a new or existing environment
func (a *EnvironmentsAPI) Copy(ctx context.Context, environmentKey string, copyData models.EnvironmentCopy) (*models.EnvironmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := copyData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.EnvironmentRead
	if err := a.client.Post(ctx, joinPath(a.envsBase(), environmentKey, "copy"), copyData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Delete deletes an environment and everything in it
func (a *EnvironmentsAPI) Delete(ctx context.Context, environmentKey string) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelProject); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, joinPath(a.envsBase(), environmentKey), nil))
}
