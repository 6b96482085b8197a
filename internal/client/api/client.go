// Package api implements the HTTP client for the TaskKeeper server. It
// keeps the bearer token obtained at login in memory and resends it on
// every task request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Task mirrors the task representation returned by the server.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskPatch is a partial task update; nil fields are not sent.
type TaskPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IsAuthenticated reports whether a login token is held for this session.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp.StatusCode, resp.Body)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) decodeError(status int, body io.Reader) error {
	e := &apiError{}
	_ = json.NewDecoder(body).Decode(e)

	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrTaskNotFound
	default:
		if msg := e.text(); msg != "" {
			return errors.New(msg)
		}
		return fmt.Errorf("server returned status %d", status)
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createTaskRequest struct {
	Title string `json:"title"`
}

// Signup registers a new account. It does not log the user in.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, nil)
}

// Login exchanges the credentials for a bearer token and keeps it for
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) CreateTask(ctx context.Context, title string) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodPost, "/tasks", createTaskRequest{Title: title}, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var list []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}
