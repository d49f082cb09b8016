package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hearthhq/hearth/sdk"
	"github.com/hearthhq/hearth/sdk/api"
	"github.com/hearthhq/hearth/sdk/session"
)

// authAPI glues the specialized API clients into the single interface the
// session machine drives.
type authAPI struct {
	client api.Client
}

func (a *authAPI) Login(
	ctx context.Context,
	email string,
	password string,
) (sdk.AuthResponse, error) {
	return a.client.Sessions().Create(ctx, email, password)
}

func (a *authAPI) Register(
	ctx context.Context,
	req sdk.RegisterRequest,
) (sdk.AuthResponse, error) {
	return a.client.Sessions().CreateFromRegistration(ctx, req)
}

func (a *authAPI) Logout(ctx context.Context) error {
	return a.client.Sessions().Delete(ctx)
}

func (a *authAPI) CurrentUser(ctx context.Context) (sdk.User, error) {
	return a.client.Users().Me(ctx)
}

// getSession constructs the API client and the session machine over the
// durable token store. Any 401 anywhere is funneled through the session's
// ForceLogout so there is exactly one authority over session teardown.
func getSession(c *cli.Context) (*session.Session, api.Client, error) {
	config, err := getConfig()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error retrieving configuration")
	}
	store, err := session.NewFileTokenStore()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error opening token store")
	}

	var sess *session.Session
	client := api.NewClient(
		config.APIAddress,
		store,
		&api.ClientOptions{
			AllowInsecure: c.Bool(flagInsecure),
			OnUnauthorized: func() {
				if sess != nil {
					sess.ForceLogout("API server rejected the session token")
				}
			},
		},
	)
	sess = session.New(store, &authAPI{client: client})
	return sess, client, nil
}

// getClient hydrates a session and admits only authenticated callers. It is
// the CLI's route guard: while the session resolves nothing is decided, and
// an anonymous outcome "navigates" to the login hint instead of rendering
// the protected command.
func getClient(c *cli.Context) (api.Client, *session.Session, error) {
	sess, client, err := getSession(c)
	if err != nil {
		return nil, nil, err
	}
	sess.Hydrate(c.Context)

	var redirect string
	guard := session.NewGuard(
		sess,
		true,
		"login",
		session.NavigatorFunc(func(target string) {
			redirect = target
		}),
	)
	decision, err := guard.Resolve(c.Context)
	if err != nil {
		return nil, nil, err
	}
	if decision != session.DecisionAllow {
		return nil, nil, errors.Errorf(
			"you are not logged in; please use `hearth %s` to continue",
			redirect,
		)
	}
	return client, sess, nil
}

func describeUser(user sdk.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	return fmt.Sprintf("%s %s", user.FirstName, user.LastName)
}
