package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

// newFakeCommunitiesServer stands up a routed fake of the communities slice
// of the API so that path parameters round-trip the way they will against the
// real server.
func newFakeCommunitiesServer(
	t *testing.T,
	communities map[int64]sdk.Community,
) *httptest.Server {
	router := mux.NewRouter()
	router.HandleFunc(
		"/api/v1/communities",
		func(w http.ResponseWriter, r *http.Request) {
			list := sdk.CommunityList{Items: []sdk.Community{}}
			for _, community := range communities {
				if location := r.URL.Query().Get("location"); location != "" &&
					community.Location != location {
					continue
				}
				list.Items = append(list.Items, community)
			}
			list.Pagination = sdk.PaginationMeta{
				CurrentPage: 1,
				PerPage:     20,
				TotalCount:  len(list.Items),
			}
			err := json.NewEncoder(w).Encode(list)
			require.NoError(t, err)
		},
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/api/v1/communities/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
			require.NoError(t, err)
			community, ok := communities[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(w, `{"error": "community not found"}`)
				return
			}
			err = json.NewEncoder(w).Encode(community)
			require.NoError(t, err)
		},
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/api/v1/communities/{id}/join",
		func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
			require.NoError(t, err)
			if _, ok := communities[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(w, `{"error": "community not found"}`)
				return
			}
			fmt.Fprintln(w, `{"message": "welcome"}`)
		},
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/api/v1/communities/{id}/posts",
		func(w http.ResponseWriter, r *http.Request) {
			create := sdk.PostCreate{}
			err := json.NewDecoder(r.Body).Decode(&create)
			require.NoError(t, err)
			id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
			require.NoError(t, err)
			w.WriteHeader(http.StatusCreated)
			err = json.NewEncoder(w).Encode(
				sdk.Post{
					ID:        7,
					Title:     create.Title,
					Content:   create.Content,
					Community: sdk.PostCommunity{ID: id},
				},
			)
			require.NoError(t, err)
		},
	).Methods(http.MethodPost)
	return httptest.NewServer(router)
}

func TestCommunitiesClientList(t *testing.T) {
	server := newFakeCommunitiesServer(
		t,
		map[int64]sdk.Community{
			1: {ID: 1, Name: "Maplewood Parents", Location: "Maplewood"},
			2: {ID: 2, Name: "Brookside Toddlers", Location: "Brookside"},
		},
	)
	defer server.Close()
	client := NewCommunitiesClient(server.URL, StaticToken(testToken), nil)
	communities, err := client.List(
		context.Background(),
		sdk.CommunitySelector{Location: "Maplewood"},
		sdk.ListOptions{},
	)
	require.NoError(t, err)
	require.Len(t, communities.Items, 1)
	require.Equal(t, "Maplewood Parents", communities.Items[0].Name)
}

func TestCommunitiesClientGet(t *testing.T) {
	server := newFakeCommunitiesServer(
		t,
		map[int64]sdk.Community{
			1: {ID: 1, Name: "Maplewood Parents", Location: "Maplewood"},
		},
	)
	defer server.Close()
	client := NewCommunitiesClient(server.URL, StaticToken(testToken), nil)
	community, err := client.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), community.ID)

	_, err = client.Get(context.Background(), 99)
	require.Error(t, err)
	require.IsType(t, &ErrNotFound{}, err)
}

func TestCommunitiesClientJoin(t *testing.T) {
	server := newFakeCommunitiesServer(
		t,
		map[int64]sdk.Community{
			1: {ID: 1, Name: "Maplewood Parents"},
		},
	)
	defer server.Close()
	client := NewCommunitiesClient(server.URL, StaticToken(testToken), nil)
	require.NoError(t, client.Join(context.Background(), 1))

	err := client.Join(context.Background(), 99)
	require.Error(t, err)
	require.IsType(t, &ErrNotFound{}, err)
}

func TestCommunitiesClientCreatePost(t *testing.T) {
	server := newFakeCommunitiesServer(
		t,
		map[int64]sdk.Community{
			1: {ID: 1, Name: "Maplewood Parents"},
		},
	)
	defer server.Close()
	client := NewCommunitiesClient(server.URL, StaticToken(testToken), nil)
	post, err := client.CreatePost(
		context.Background(),
		1,
		sdk.PostCreate{
			Title:   "Stroller swap this weekend",
			Content: "Meet at the park at 10.",
		},
	)
	require.NoError(t, err)
	require.Equal(t, "Stroller swap this weekend", post.Title)
	require.Equal(t, int64(1), post.Community.ID)
}

func TestCommunitiesClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/communities", r.URL.Path)
				create := sdk.CommunityCreate{}
				err := json.NewDecoder(r.Body).Decode(&create)
				require.NoError(t, err)
				w.WriteHeader(http.StatusCreated)
				err = json.NewEncoder(w).Encode(
					sdk.Community{
						ID:       3,
						Name:     create.Name,
						Location: create.Location,
					},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewCommunitiesClient(server.URL, StaticToken(testToken), nil)
	community, err := client.Create(
		context.Background(),
		sdk.CommunityCreate{
			Name:     "Night Owls",
			Location: "Maplewood",
		},
	)
	require.NoError(t, err)
	require.Equal(t, int64(3), community.ID)
	require.Equal(t, "Night Owls", community.Name)
}
