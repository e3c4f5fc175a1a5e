package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dto "github.com/jessicacardoso1/taskmanager-web/internal/data_models"
	apperrors "github.com/jessicacardoso1/taskmanager-web/internal/errors"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

const collectionPath = "/Tarefas"

// Client talks to the remote task store. It normalizes the two response
// shapes of the protocol (success-flag envelopes and the status-only update
// endpoint) into plain Go errors; raw wire integers and envelope fields never
// escape this package.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches the full collection. The returned string is the envelope's
// advisory message, which may be present even on success.
func (c *Client) List(ctx context.Context) ([]model.Task, string, error) {
	env, err := c.doEnvelope(ctx, http.MethodGet, collectionPath, nil)
	if err != nil {
		return nil, "", err
	}

	var payloads []dto.TaskPayload
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &payloads); err != nil {
			return nil, "", fmt.Errorf("decode task list: %w", err)
		}
	}

	tasks := make([]model.Task, 0, len(payloads))
	for _, p := range payloads {
		task, err := p.Model()
		if err != nil {
			return nil, "", fmt.Errorf("decode task %d: %w", p.ID, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, env.Message, nil
}

func (c *Client) Get(ctx context.Context, id int) (*model.Task, error) {
	env, err := c.doEnvelope(ctx, http.MethodGet, fmt.Sprintf("%s/%d", collectionPath, id), nil)
	if err != nil {
		return nil, err
	}

	var payload dto.TaskPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}

	task, err := payload.Model()
	if err != nil {
		return nil, fmt.Errorf("decode task %d: %w", payload.ID, err)
	}

	return &task, nil
}

// Create submits a new task and returns the envelope message.
func (c *Client) Create(ctx context.Context, req dto.CreateTaskRequest) (string, error) {
	env, err := c.doEnvelope(ctx, http.MethodPost, collectionPath, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Update submits the full task representation. This endpoint returns no
// envelope; the only success signal is 204 with an empty body.
func (c *Client) Update(ctx context.Context, id int, req dto.UpdateTaskRequest) error {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", collectionPath, id), req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return &apperrors.Exception{
		Message:    readEnvelopeMessage(resp.Body),
		StatusCode: resp.StatusCode,
	}
}

// Delete removes a task and returns the envelope message.
func (c *Client) Delete(ctx context.Context, id int) (string, error) {
	env, err := c.doEnvelope(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", collectionPath, id), nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (c *Client) doEnvelope(ctx context.Context, method, path string, body any) (*envelope, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.Exception{
			Message:    readEnvelopeMessage(resp.Body),
			StatusCode: resp.StatusCode,
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	if !env.IsSuccess {
		return nil, &apperrors.Exception{
			Message:    env.Message,
			StatusCode: resp.StatusCode,
		}
	}

	return &env, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// readEnvelopeMessage extracts the message of a failure envelope when the
// body carries one; failure bodies are not guaranteed to be envelopes.
func readEnvelopeMessage(body io.Reader) string {
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return ""
	}
	return env.Message
}
