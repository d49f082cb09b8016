package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hearthhq/hearth/sdk"
)

// CommunitiesClient is the specialized client for community management and
// community post feeds.
type CommunitiesClient interface {
	List(
		ctx context.Context,
		selector sdk.CommunitySelector,
		opts sdk.ListOptions,
	) (sdk.CommunityList, error)
	Get(ctx context.Context, id int64) (sdk.Community, error)
	Create(ctx context.Context, create sdk.CommunityCreate) (sdk.Community, error)
	// Join adds the current user to the community's membership.
	Join(ctx context.Context, id int64) error
	ListPosts(ctx context.Context, communityID int64) (sdk.PostList, error)
	CreatePost(
		ctx context.Context,
		communityID int64,
		create sdk.PostCreate,
	) (sdk.Post, error)
}

type communitiesClient struct {
	*BaseClient
}

// NewCommunitiesClient returns a specialized client for community management.
func NewCommunitiesClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) CommunitiesClient {
	return &communitiesClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

func (c *communitiesClient) List(
	ctx context.Context,
	selector sdk.CommunitySelector,
	opts sdk.ListOptions,
) (sdk.CommunityList, error) {
	communities := sdk.CommunityList{}
	queryParams := listQueryParams(opts)
	if selector.Location != "" {
		queryParams["location"] = selector.Location
	}
	if selector.Category != "" {
		queryParams["category"] = selector.Category
	}
	return communities, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/communities",
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &communities,
		},
	)
}

func (c *communitiesClient) Get(
	ctx context.Context,
	id int64,
) (sdk.Community, error) {
	community := sdk.Community{}
	return community, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/v1/communities/%d", id),
			SuccessCode: http.StatusOK,
			RespObj:     &community,
		},
	)
}

func (c *communitiesClient) Create(
	ctx context.Context,
	create sdk.CommunityCreate,
) (sdk.Community, error) {
	community := sdk.Community{}
	return community, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/communities",
			ReqBodyObj:  create,
			SuccessCode: http.StatusCreated,
			RespObj:     &community,
		},
	)
}

func (c *communitiesClient) Join(ctx context.Context, id int64) error {
	resp, err := c.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        fmt.Sprintf("api/v1/communities/%d/join", id),
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *communitiesClient) ListPosts(
	ctx context.Context,
	communityID int64,
) (sdk.PostList, error) {
	posts := sdk.PostList{}
	return posts, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/v1/communities/%d/posts", communityID),
			SuccessCode: http.StatusOK,
			RespObj:     &posts,
		},
	)
}

func (c *communitiesClient) CreatePost(
	ctx context.Context,
	communityID int64,
	create sdk.PostCreate,
) (sdk.Post, error) {
	post := sdk.Post{}
	return post, c.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        fmt.Sprintf("api/v1/communities/%d/posts", communityID),
			ReqBodyObj:  create,
			SuccessCode: http.StatusCreated,
			RespObj:     &post,
		},
	)
}

// listQueryParams converts common paging options into URL query parameters.
func listQueryParams(opts sdk.ListOptions) map[string]string {
	queryParams := map[string]string{}
	if opts.Page > 0 {
		queryParams["page"] = fmt.Sprintf("%d", opts.Page)
	}
	if opts.PerPage > 0 {
		queryParams["per_page"] = fmt.Sprintf("%d", opts.PerPage)
	}
	if opts.Search != "" {
		queryParams["search"] = opts.Search
	}
	return queryParams
}
