package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hearthhq/hearth/sdk"
)

// FamilyEventsClient is the specialized client for the family schedule.
type FamilyEventsClient interface {
	List(ctx context.Context, opts sdk.ListOptions) (sdk.FamilyEventList, error)
	Get(ctx context.Context, id int64) (sdk.FamilyEvent, error)
	Create(ctx context.Context, spec sdk.FamilyEventSpec) (sdk.FamilyEvent, error)
	Update(
		ctx context.Context,
		id int64,
		spec sdk.FamilyEventSpec,
	) (sdk.FamilyEvent, error)
	Delete(ctx context.Context, id int64) error
}

type familyEventsClient struct {
	*BaseClient
}

// NewFamilyEventsClient returns a specialized client for the family schedule.
func NewFamilyEventsClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) FamilyEventsClient {
	return &familyEventsClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

func (f *familyEventsClient) List(
	ctx context.Context,
	opts sdk.ListOptions,
) (sdk.FamilyEventList, error) {
	events := sdk.FamilyEventList{}
	return events, f.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/family_events",
			QueryParams: listQueryParams(opts),
			SuccessCode: http.StatusOK,
			RespObj:     &events,
		},
	)
}

func (f *familyEventsClient) Get(
	ctx context.Context,
	id int64,
) (sdk.FamilyEvent, error) {
	event := sdk.FamilyEvent{}
	return event, f.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/v1/family_events/%d", id),
			SuccessCode: http.StatusOK,
			RespObj:     &event,
		},
	)
}

func (f *familyEventsClient) Create(
	ctx context.Context,
	spec sdk.FamilyEventSpec,
) (sdk.FamilyEvent, error) {
	event := sdk.FamilyEvent{}
	return event, f.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/family_events",
			ReqBodyObj:  spec,
			SuccessCode: http.StatusCreated,
			RespObj:     &event,
		},
	)
}

func (f *familyEventsClient) Update(
	ctx context.Context,
	id int64,
	spec sdk.FamilyEventSpec,
) (sdk.FamilyEvent, error) {
	event := sdk.FamilyEvent{}
	return event, f.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("api/v1/family_events/%d", id),
			ReqBodyObj:  spec,
			SuccessCode: http.StatusOK,
			RespObj:     &event,
		},
	)
}

func (f *familyEventsClient) Delete(ctx context.Context, id int64) error {
	resp, err := f.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("api/v1/family_events/%d", id),
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
