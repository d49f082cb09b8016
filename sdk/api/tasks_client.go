package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hearthhq/hearth/sdk"
)

// TasksClient is the specialized client for task management.
type TasksClient interface {
	List(ctx context.Context, opts sdk.ListOptions) (sdk.TaskList, error)
	Get(ctx context.Context, id int64) (sdk.Task, error)
	Create(ctx context.Context, spec sdk.TaskSpec) (sdk.Task, error)
	Update(ctx context.Context, id int64, spec sdk.TaskSpec) (sdk.Task, error)
	Delete(ctx context.Context, id int64) error
	// Complete marks the task done without touching its other fields.
	Complete(ctx context.Context, id int64) (sdk.Task, error)
}

type tasksClient struct {
	*BaseClient
}

// NewTasksClient returns a specialized client for task management.
func NewTasksClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) TasksClient {
	return &tasksClient{
		BaseClient: NewBaseClient(apiAddress, tokens, opts),
	}
}

func (t *tasksClient) List(
	ctx context.Context,
	opts sdk.ListOptions,
) (sdk.TaskList, error) {
	tasks := sdk.TaskList{}
	return tasks, t.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/v1/tasks",
			QueryParams: listQueryParams(opts),
			SuccessCode: http.StatusOK,
			RespObj:     &tasks,
		},
	)
}

func (t *tasksClient) Get(ctx context.Context, id int64) (sdk.Task, error) {
	task := sdk.Task{}
	return task, t.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/v1/tasks/%d", id),
			SuccessCode: http.StatusOK,
			RespObj:     &task,
		},
	)
}

func (t *tasksClient) Create(
	ctx context.Context,
	spec sdk.TaskSpec,
) (sdk.Task, error) {
	task := sdk.Task{}
	return task, t.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPost,
			Path:        "api/v1/tasks",
			ReqBodyObj:  spec,
			SuccessCode: http.StatusCreated,
			RespObj:     &task,
		},
	)
}

func (t *tasksClient) Update(
	ctx context.Context,
	id int64,
	spec sdk.TaskSpec,
) (sdk.Task, error) {
	task := sdk.Task{}
	return task, t.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPut,
			Path:        fmt.Sprintf("api/v1/tasks/%d", id),
			ReqBodyObj:  spec,
			SuccessCode: http.StatusOK,
			RespObj:     &task,
		},
	)
}

func (t *tasksClient) Delete(ctx context.Context, id int64) error {
	resp, err := t.SubmitRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodDelete,
			Path:        fmt.Sprintf("api/v1/tasks/%d", id),
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (t *tasksClient) Complete(
	ctx context.Context,
	id int64,
) (sdk.Task, error) {
	task := sdk.Task{}
	completed := true
	return task, t.ExecuteRequest(
		ctx,
		OutboundRequest{
			Method:      http.MethodPatch,
			Path:        fmt.Sprintf("api/v1/tasks/%d", id),
			ReqBodyObj:  sdk.TaskSpec{Completed: &completed},
			SuccessCode: http.StatusOK,
			RespObj:     &task,
		},
	)
}
