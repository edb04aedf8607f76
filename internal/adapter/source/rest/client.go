package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/todos/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client implements domain.TodoRepository against the todos REST resource.
// Requests are never retried: every failure is reported once.
type Client struct {
	resty  *resty.Client
	logger *slog.Logger
}

// NewClient creates a new REST client for baseURL
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json; charset=UTF-8").
		SetLogger(restyLogger{logger})

	c := &Client{resty: r, logger: logger}
	r.OnAfterResponse(c.logResponse)
	return c
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug("todo request",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)
	return nil
}

// request starts a JSON request bound to ctx
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.resty.R().
		SetContext(ctx).
		ForceContentType("application/json")
}

// check maps transport and status failures onto domain errors
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		if resp == nil || resp.RawResponse == nil {
			c.logger.Error("todo request failed", "op", op, "error", err)
			return fmt.Errorf("%s: %w: %v", op, domain.ErrServerOffline, err)
		}
		return fmt.Errorf("%s: failed to parse response: %w", op, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrRequestFailed, domain.ErrTodoNotFound)
	case resp.IsError():
		c.logger.Error("todo request error", "op", op, "status", resp.StatusCode(), "body", resp.String())
		return fmt.Errorf("%s: %w: status %d", op, domain.ErrRequestFailed, resp.StatusCode())
	}
	return nil
}

// ListTodos returns every todo owned by userID
func (c *Client) ListTodos(ctx context.Context, userID int) ([]domain.Todo, error) {
	var out []TodoDTO
	resp, err := c.request(ctx).
		SetQueryParam("userId", strconv.Itoa(userID)).
		SetResult(&out).
		Get("/todos")
	if err := c.check("list todos", resp, err); err != nil {
		return nil, err
	}
	return MapTodos(out), nil
}

// CreateTodo posts a draft; the server assigns the ID
func (c *Client) CreateTodo(ctx context.Context, draft domain.TodoDraft) (domain.Todo, error) {
	var out TodoDTO
	resp, err := c.request(ctx).
		SetBody(toCreateRequest(draft)).
		SetResult(&out).
		Post("/todos")
	if err := c.check("create todo", resp, err); err != nil {
		return domain.Todo{}, err
	}
	return MapTodo(out), nil
}

// UpdateTodo patches a todo with its full payload
func (c *Client) UpdateTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	var out TodoDTO
	resp, err := c.request(ctx).
		SetPathParam("id", strconv.Itoa(todo.ID)).
		SetBody(toDTO(todo)).
		SetResult(&out).
		Patch("/todos/{id}")
	if err := c.check("update todo", resp, err); err != nil {
		return domain.Todo{}, err
	}
	return MapTodo(out), nil
}

// DeleteTodo removes a todo. The response carries no payload.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		Delete("/todos/{id}")
	return c.check("delete todo", resp, err)
}

// restyLogger routes resty's internal logging to slog
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
