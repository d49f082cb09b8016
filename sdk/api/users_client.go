package api

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hearthhq/hearth/sdk"
)

// UsersClient is the specialized client for the current user's profile and
// engagement data.
type UsersClient interface {
	// Me retrieves the profile of the user the current token belongs to.
	Me(ctx context.Context) (sdk.User, error)
	// Update modifies the current user's profile server-side and returns the
	// updated profile.
	Update(ctx context.Context, update sdk.UserUpdate) (sdk.User, error)
	// Engagement retrieves the current user's dashboard engagement summary.
	Engagement(ctx context.Context) (sdk.DashboardStats, error)
}

type usersClient struct {
	*BaseClient
}

// NewUsersClient returns a specialized client for user profile management.
func NewUsersClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) UsersClient {
	return &usersClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

func (u *usersClient) Me(ctx context.Context) (sdk.User, error) {
	user := sdk.User{}
	resp, err := u.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/users/me",
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return user, err
	}
	defer resp.Body.Close()
	respBodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return user, errors.Wrap(err, "error reading response body")
	}
	// The server answers with either the bare profile or a {"user": {...}}
	// envelope depending on version. Accept both, reject everything else.
	envelope := struct {
		User *sdk.User `json:"user"`
	}{}
	if err := json.Unmarshal(respBodyBytes, &envelope); err == nil &&
		envelope.User != nil {
		user = *envelope.User
	} else if err := json.Unmarshal(respBodyBytes, &user); err != nil {
		return user, errors.Wrap(err, "error unmarshaling response body")
	}
	if user.ID == 0 || user.Email == "" {
		return user, &ErrMalformedResponse{
			Reason: "response contained no usable user profile",
		}
	}
	return user, nil
}

func (u *usersClient) Update(
	ctx context.Context,
	update sdk.UserUpdate,
) (sdk.User, error) {
	user := sdk.User{}
	return user, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPut,
			Path:        "api/v1/users/me",
			ReqBodyObj:  update,
			SuccessCode: http.StatusOK,
			RespObj:     &user,
		},
	)
}

func (u *usersClient) Engagement(
	ctx context.Context,
) (sdk.DashboardStats, error) {
	stats := sdk.DashboardStats{}
	return stats, u.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/dashboard/engagement",
			SuccessCode: http.StatusOK,
			RespObj:     &stats,
		},
	)
}
