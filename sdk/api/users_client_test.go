package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

func TestUsersClientMe(t *testing.T) {
	testUser := sdk.User{
		ID:        42,
		Email:     "jamie@example.com",
		FirstName: "Jamie",
		LastName:  "Chen",
		Location:  "Maplewood",
	}
	testCases := []struct {
		name string
		body func() string
	}{
		{
			name: "bare profile",
			body: func() string {
				bodyBytes, err := json.Marshal(testUser)
				require.NoError(t, err)
				return string(bodyBytes)
			},
		},
		{
			name: "user envelope",
			body: func() string {
				bodyBytes, err := json.Marshal(
					struct {
						User sdk.User `json:"user"`
					}{User: testUser},
				)
				require.NoError(t, err)
				return string(bodyBytes)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(
				http.HandlerFunc(
					func(w http.ResponseWriter, r *http.Request) {
						require.Equal(t, http.MethodGet, r.Method)
						require.Equal(t, "/api/v1/users/me", r.URL.Path)
						require.Equal(
							t,
							"Bearer "+testToken,
							r.Header.Get("Authorization"),
						)
						fmt.Fprintln(w, testCase.body())
					},
				),
			)
			defer server.Close()
			client := NewUsersClient(server.URL, StaticToken(testToken), nil)
			user, err := client.Me(context.Background())
			require.NoError(t, err)
			require.Equal(t, testUser, user)
		})
	}
}

func TestUsersClientMeUnusableProfile(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, `{"message": "hello"}`)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, StaticToken(testToken), nil)
	_, err := client.Me(context.Background())
	require.Error(t, err)
	require.IsType(t, &ErrMalformedResponse{}, err)
}

func TestUsersClientUpdate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(t, "/api/v1/users/me", r.URL.Path)
				update := sdk.UserUpdate{}
				err := json.NewDecoder(r.Body).Decode(&update)
				require.NoError(t, err)
				require.Equal(t, "Brookside", update.Location)
				bodyBytes, err := json.Marshal(
					sdk.User{
						ID:       42,
						Email:    "jamie@example.com",
						Location: update.Location,
					},
				)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, StaticToken(testToken), nil)
	user, err := client.Update(
		context.Background(),
		sdk.UserUpdate{Location: "Brookside"},
	)
	require.NoError(t, err)
	require.Equal(t, "Brookside", user.Location)
}

func TestUsersClientEngagement(t *testing.T) {
	testStats := sdk.DashboardStats{
		TotalCommunities: 3,
		TotalPosts:       17,
		TotalUsers:       120,
		UserEngagement:   87.5,
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/v1/dashboard/engagement", r.URL.Path)
				bodyBytes, err := json.Marshal(testStats)
				require.NoError(t, err)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, StaticToken(testToken), nil)
	stats, err := client.Engagement(context.Background())
	require.NoError(t, err)
	require.Equal(t, testStats, stats)
}
