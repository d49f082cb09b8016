package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hearthhq/hearth/sdk"
)

// MarketplaceClient is the specialized client for secondhand marketplace
// listings.
type MarketplaceClient interface {
	List(
		ctx context.Context,
		selector sdk.MarketplaceSelector,
		opts sdk.ListOptions,
	) (sdk.MarketplaceItemList, error)
	Get(ctx context.Context, id int64) (sdk.MarketplaceItem, error)
	Create(
		ctx context.Context,
		spec sdk.MarketplaceItemSpec,
	) (sdk.MarketplaceItem, error)
	Update(
		ctx context.Context,
		id int64,
		spec sdk.MarketplaceItemSpec,
	) (sdk.MarketplaceItem, error)
	Delete(ctx context.Context, id int64) error
}

type marketplaceClient struct {
	*BaseClient
}

// NewMarketplaceClient returns a specialized client for marketplace listings.
func NewMarketplaceClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) MarketplaceClient {
	return &marketplaceClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

func (m *marketplaceClient) List(
	ctx context.Context,
	selector sdk.MarketplaceSelector,
	opts sdk.ListOptions,
) (sdk.MarketplaceItemList, error) {
	items := sdk.MarketplaceItemList{}
	queryParams := listQueryParams(opts)
	if selector.Category != "" {
		queryParams["category"] = selector.Category
	}
	if selector.Condition != "" {
		queryParams["condition"] = selector.Condition
	}
	if selector.MinPrice != nil {
		queryParams["min_price"] =
			strconv.FormatFloat(*selector.MinPrice, 'f', -1, 64)
	}
	if selector.MaxPrice != nil {
		queryParams["max_price"] =
			strconv.FormatFloat(*selector.MaxPrice, 'f', -1, 64)
	}
	if selector.Location != "" {
		queryParams["location"] = selector.Location
	}
	return items, m.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/marketplace_items",
			QueryParams: queryParams,
			SuccessCode: http.StatusOK,
			RespObj:     &items,
		},
	)
}

func (m *marketplaceClient) Get(
	ctx context.Context,
	id int64,
) (sdk.MarketplaceItem, error) {
	item := sdk.MarketplaceItem{}
	return item, m.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/v1/marketplace_items/%d", id),
			SuccessCode: http.StatusOK,
			RespObj:     &item,
		},
	)
}

func (m *marketplaceClient) Create(
	ctx context.Context,
	spec sdk.MarketplaceItemSpec,
) (sdk.MarketplaceItem, error) {
	item := sdk.MarketplaceItem{}
	return item, m.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/marketplace_items",
			ReqBodyObj:  spec,
			SuccessCode: http.StatusCreated,
			RespObj:     &item,
		},
	)
}

func (m *marketplaceClient) Update(
	ctx context.Context,
	id int64,
	spec sdk.MarketplaceItemSpec,
) (sdk.MarketplaceItem, error) {
	item := sdk.MarketplaceItem{}
	return item, m.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("api/v1/marketplace_items/%d", id),
			ReqBodyObj:  spec,
			SuccessCode: http.StatusOK,
			RespObj:     &item,
		},
	)
}

func (m *marketplaceClient) Delete(ctx context.Context, id int64) error {
	resp, err := m.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("api/v1/marketplace_items/%d", id),
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
