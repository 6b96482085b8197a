package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
	}

	rm := db.NewInMemoryRepositoryManager()
	us := users.NewService(rm.Users(), cfg)
	ts := tasks.NewService(rm.Tasks())

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewHTTPServer(":0", logger, us, ts, cfg.SecretKey)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func signupAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/signup", "", signupRequest{Name: name, Email: email, Password: password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return decodeBody[tokenResponse](t, resp).Token
}

func TestSignupLoginTaskLifecycle(t *testing.T) {
	app := newTestServer(t).App()

	// signup
	resp := doJSON(t, app, http.MethodPost, "/auth/signup", "", signupRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created", decodeBody[messageResponse](t, resp).Message)

	// login
	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", loginRequest{Email: "ann@x.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody[tokenResponse](t, resp).Token
	require.NotEmpty(t, token)

	// create
	resp = doJSON(t, app, http.MethodPost, "/tasks/", token, createTaskRequest{Title: "buy milk"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[tasks.Task](t, resp)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)
	require.NotEmpty(t, created.ID)

	// list contains exactly the created task
	resp = doJSON(t, app, http.MethodGet, "/tasks/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]tasks.Task](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// mark completed
	completed := true
	resp = doJSON(t, app, http.MethodPut, "/tasks/"+created.ID, token, patchTaskRequest{Completed: &completed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[tasks.Task](t, resp)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)

	// delete
	resp = doJSON(t, app, http.MethodDelete, "/tasks/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeBody[deleteTaskResponse](t, resp)
	assert.Equal(t, created.ID, deleted.ID)

	// list is empty again
	resp = doJSON(t, app, http.MethodGet, "/tasks/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]tasks.Task](t, resp))
}

func TestSignup_Validation(t *testing.T) {
	app := newTestServer(t).App()

	tests := []struct {
		name string
		body signupRequest
	}{
		{name: "short name", body: signupRequest{Name: "An", Email: "ann@x.com", Password: "secret1"}},
		{name: "bad email", body: signupRequest{Name: "Ann", Email: "nope", Password: "secret1"}},
		{name: "short password", body: signupRequest{Name: "Ann", Email: "ann@x.com", Password: "12345"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, decodeBody[errorResponse](t, resp).Error)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	app := newTestServer(t).App()

	resp := doJSON(t, app, http.MethodPost, "/auth/signup", "", signupRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/auth/signup", "", signupRequest{Name: "Ann Again", Email: "ann@x.com", Password: "other12"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", decodeBody[errorResponse](t, resp).Error)
}

func TestLogin_Failures(t *testing.T) {
	app := newTestServer(t).App()

	resp := doJSON(t, app, http.MethodPost, "/auth/signup", "", signupRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("unknown email", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/auth/login", "", loginRequest{Email: "ghost@x.com", Password: "secret1"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "User not found", decodeBody[errorResponse](t, resp).Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/auth/login", "", loginRequest{Email: "ann@x.com", Password: "wrongpass"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Wrong password", decodeBody[errorResponse](t, resp).Error)
	})
}

func TestTasks_OwnershipIsolation(t *testing.T) {
	app := newTestServer(t).App()

	tokenA := signupAndLogin(t, app, "Ann", "ann@x.com", "secret1")
	tokenB := signupAndLogin(t, app, "Bob", "bob@x.com", "secret2")

	resp := doJSON(t, app, http.MethodPost, "/tasks/", tokenA, createTaskRequest{Title: "Ann's task"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	annTask := decodeBody[tasks.Task](t, resp)

	// B's list never contains A's record
	resp = doJSON(t, app, http.MethodGet, "/tasks/", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]tasks.Task](t, resp))

	// B cannot update A's record
	completed := true
	resp = doJSON(t, app, http.MethodPut, "/tasks/"+annTask.ID, tokenB, patchTaskRequest{Completed: &completed})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or unauthorized", decodeBody[messageResponse](t, resp).Message)

	// B cannot delete A's record
	resp = doJSON(t, app, http.MethodDelete, "/tasks/"+annTask.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A's record is untouched
	resp = doJSON(t, app, http.MethodGet, "/tasks/", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]tasks.Task](t, resp)
	require.Len(t, list, 1)
	assert.False(t, list[0].Completed)
}

func TestTasks_CreateWithoutTitle(t *testing.T) {
	app := newTestServer(t).App()
	token := signupAndLogin(t, app, "Ann", "ann@x.com", "secret1")

	resp := doJSON(t, app, http.MethodPost, "/tasks/", token, createTaskRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTasks_NonUUIDTaskID(t *testing.T) {
	app := newTestServer(t).App()
	token := signupAndLogin(t, app, "Ann", "ann@x.com", "secret1")

	completed := true
	resp := doJSON(t, app, http.MethodPut, "/tasks/not-a-uuid", token, patchTaskRequest{Completed: &completed})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/tasks/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
