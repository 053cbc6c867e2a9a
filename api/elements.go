package api

import (
	"context"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/models"
)

// ElementsAPI drives the embedded UI components ("elements") of the API
type ElementsAPI struct {
	*base
}

// LoginAs mints an embedded-login session for an end user in a tenant. The
// returned token and redirect URL are handed to the frontend to complete the
// login.
func (a *ElementsAPI) LoginAs(ctx context.Context, loginData models.UserLoginRequest) (*models.UserLoginResponse, error) {
	if err := a.ensureContext(ctx, config.APIKeyLevelEnvironment); err != nil {
		return nil, perr.Wrap(err)
	}
	if err := loginData.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	var resp models.UserLoginResponse
	if err := a.client.Post(ctx, "/v2/auth/elements_login_as", loginData, &resp); err != nil {
		return nil, perr.Wrap(err)
	}
	return &resp, nil
}
