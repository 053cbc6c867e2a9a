package models_test

import (
	"testing"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/models"
)

func TestUserCreateValidate(t *testing.T) {
	assert.NoErr(t, models.UserCreate{Key: "ada"}.Validate())
	assert.NoErr(t, models.UserCreate{Key: "ada", Email: "ada@example.com"}.Validate())
	assert.NotNil(t, models.UserCreate{}.Validate())
	assert.NotNil(t, models.UserCreate{Key: "ada", Email: "not-an-email"}.Validate())
}

func TestResourceCreateValidate(t *testing.T) {
	valid := models.ResourceCreate{
		Key:     "document",
		Name:    "Document",
		Actions: map[string]models.ActionBlockEditable{"read": {}},
	}
	assert.NoErr(t, valid.Validate())

	noActions := valid
	noActions.Actions = nil
	assert.NotNil(t, noActions.Validate())

	noKey := valid
	noKey.Key = ""
	assert.NotNil(t, noKey.Validate())
}

func TestRoleAssignmentValidate(t *testing.T) {
	assert.NoErr(t, models.RoleAssignmentCreate{Role: "editor", Tenant: "default", User: "ada"}.Validate())
	assert.NotNil(t, models.RoleAssignmentCreate{Role: "editor", Tenant: "default"}.Validate())
	assert.NotNil(t, models.RoleAssignmentRemove{Role: "editor", User: "ada"}.Validate())
}

func TestEnvironmentCopyValidate(t *testing.T) {
	assert.NoErr(t, models.EnvironmentCopy{
		TargetEnv: models.EnvironmentCopyTarget{Key: "staging-2"},
	}.Validate())

	overwrite := "overwrite"
	assert.NoErr(t, models.EnvironmentCopy{
		TargetEnv:        models.EnvironmentCopyTarget{Key: "staging-2"},
		ConflictStrategy: &overwrite,
	}.Validate())

	bogus := "merge"
	assert.NotNil(t, models.EnvironmentCopy{
		TargetEnv:        models.EnvironmentCopyTarget{Key: "staging-2"},
		ConflictStrategy: &bogus,
	}.Validate())

	assert.NotNil(t, models.EnvironmentCopy{}.Validate())
}

func TestUserLoginRequestValidate(t *testing.T) {
	assert.NoErr(t, models.UserLoginRequest{UserID: "ada", TenantID: "default"}.Validate())
	assert.NotNil(t, models.UserLoginRequest{UserID: "ada"}.Validate())
	assert.NotNil(t, models.UserLoginRequest{TenantID: "default"}.Validate())
}
