package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func TestLogin_StoresTokenAndResendsIt(t *testing.T) {
	var seenAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
		case "/tasks":
			seenAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]Task{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.False(t, c.IsAuthenticated())

	require.NoError(t, c.Login(context.Background(), "ann@x.com", "secret1"))
	require.True(t, c.IsAuthenticated())

	_, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", seenAuth)
}

func TestDo_MapsStatusCodesToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"message":"unauthorized"}`, want: common.ErrUnauthorized},
		{name: "404", status: http.StatusNotFound, body: `{"message":"Task not found or unauthorized"}`, want: common.ErrTaskNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL)
			_, err := c.ListTasks(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_SurfacesServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Email already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Signup(context.Background(), "Ann", "ann@x.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Email already exists", err.Error())
}

func TestCreateTask_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buy milk", body["title"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Task{ID: "t-1", Title: "buy milk"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	task, err := c.CreateTask(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "t-1", task.ID)
	assert.False(t, task.Completed)
}
