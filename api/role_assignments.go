package api

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/pagination"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// RoleAssignmentsAPI manages role grants between users, roles and tenants
type RoleAssignmentsAPI struct {
	*base
}

// List retrieves a page of role assignments. Each of userKey, tenantKey and
// roleKey is an optional filter; pass "" to skip it.
func (a *RoleAssignmentsAPI) List(ctx context.Context, userKey, tenantKey, roleKey string, opts ...pagination.Option) ([]models.RoleAssignmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}

	pager, err := pagination.ApplyOptions(opts...)
	if err != nil {
		return nil, perr.Wrap(err)
	}

	query := pager.Query()
	if userKey != "" {
		query.Set("user", userKey)
	}
	if tenantKey != "" {
		query.Set("tenant", tenantKey)
	}
	if roleKey != "" {
		query.Set("role", roleKey)
	}

	var resp []models.RoleAssignmentRead
	path := fmt.Sprintf("%s?%s", a.factsBase("role_assignments"), query.Encode())
	if err := a.client.Get(ctx, path, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return resp, nil
}

// Assign grants a role to a user in the scope of a tenant
func (a *RoleAssignmentsAPI) Assign(ctx context.Context, assignment models.RoleAssignmentCreate) (*models.RoleAssignmentRead, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := assignment.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.RoleAssignmentRead
	if err := a.client.Post(ctx, a.factsBase("role_assignments"), assignment, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// Unassign revokes a role from a user in the scope of a tenant
func (a *RoleAssignmentsAPI) Unassign(ctx context.Context, unassignment models.RoleAssignmentRemove) error {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return perr.Wrap(err)
	}
	if err := unassignment.Validate(); err != nil {
		return perr.Wrap(err)
	}

	return perr.Wrap(a.client.Delete(ctx, a.factsBase("role_assignments"), unassignment))
}

// BulkAssign grants many roles in a single call
func (a *RoleAssignmentsAPI) BulkAssign(ctx context.Context, assignments []models.RoleAssignmentCreate) (*models.BulkRoleAssignmentReport, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	for _, assignment := range assignments {
		if err := assignment.Validate(); err != nil {
			return nil, perr.Wrap(err)
		}
	}

	var resp models.BulkRoleAssignmentReport
	if err := a.client.Post(ctx, joinPath(a.factsBase("role_assignments"), "bulk"), assignments, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}

// BulkUnassign revokes many roles in a single call
func (a *RoleAssignmentsAPI) BulkUnassign(ctx context.Context, unassignments []models.RoleAssignmentRemove) (*models.BulkRoleUnAssignmentReport, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	for _, unassignment := range unassignments {
		if err := unassignment.Validate(); err != nil {
			return nil, perr.Wrap(err)
		}
	}

	var resp models.BulkRoleUnAssignmentReport
	if err := a.client.Post(ctx, joinPath(a.factsBase("role_assignments"), "bulk_unassign"), unassignments, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}
