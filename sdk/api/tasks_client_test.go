package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

func TestTasksClientList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/v1/tasks", r.URL.Path)
				require.Equal(t, "2", r.URL.Query().Get("page"))
				require.Equal(t, "10", r.URL.Query().Get("per_page"))
				err := json.NewEncoder(w).Encode(
					sdk.TaskList{
						Items: []sdk.Task{
							{ID: 1, Title: "Pack lunches"},
						},
						Pagination: sdk.PaginationMeta{
							CurrentPage: 2,
							PerPage:     10,
							TotalCount:  11,
						},
					},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewTasksClient(server.URL, StaticToken(testToken), nil)
	tasks, err := client.List(
		context.Background(),
		sdk.ListOptions{Page: 2, PerPage: 10},
	)
	require.NoError(t, err)
	require.Len(t, tasks.Items, 1)
	require.Equal(t, 2, tasks.Pagination.CurrentPage)
}

func TestTasksClientComplete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				require.Equal(t, "/api/v1/tasks/5", r.URL.Path)
				spec := sdk.TaskSpec{}
				err := json.NewDecoder(r.Body).Decode(&spec)
				require.NoError(t, err)
				// The completion patch must touch nothing else.
				require.NotNil(t, spec.Completed)
				require.True(t, *spec.Completed)
				require.Empty(t, spec.Title)
				require.Nil(t, spec.Priority)
				require.Nil(t, spec.DueDate)
				err = json.NewEncoder(w).Encode(
					sdk.Task{ID: 5, Title: "Pack lunches", Completed: true},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewTasksClient(server.URL, StaticToken(testToken), nil)
	task, err := client.Complete(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, task.Completed)
}

func TestTasksClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/v1/tasks", r.URL.Path)
				spec := sdk.TaskSpec{}
				err := json.NewDecoder(r.Body).Decode(&spec)
				require.NoError(t, err)
				w.WriteHeader(http.StatusCreated)
				err = json.NewEncoder(w).Encode(
					sdk.Task{ID: 6, Title: spec.Title},
				)
				require.NoError(t, err)
			},
		),
	)
	defer server.Close()
	client := NewTasksClient(server.URL, StaticToken(testToken), nil)
	task, err := client.Create(
		context.Background(),
		sdk.TaskSpec{Title: "Book pediatrician"},
	)
	require.NoError(t, err)
	require.Equal(t, int64(6), task.ID)
}

func TestTasksClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/v1/tasks/5", r.URL.Path)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client := NewTasksClient(server.URL, StaticToken(testToken), nil)
	require.NoError(t, client.Delete(context.Background(), 5))
}
