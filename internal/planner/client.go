package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// apiEnvelope is the backend's response wrapper: payloads ride in `data`.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type idPayload struct {
	ID int64 `json:"id"`
}

type searchPayload struct {
	Events []Event `json:"events"`
}

// Client is the HTTP implementation of BackendAPI, JSON over the §6
// routes with a bearer token. There is no request cancellation beyond the
// caller's context and no retry; timeout policy belongs to the transport.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ BackendAPI = (*Client)(nil)

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil && resp.StatusCode < 300 {
		return decodeErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if len(envelope.Data) == 0 {
			return fmt.Errorf("empty response payload from %s", path)
		}
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

func (c *Client) FetchItinerary(ctx context.Context, id int64) (*Itinerary, error) {
	var it Itinerary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/itineraries/%d", id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *Client) SaveItinerary(ctx context.Context, it *Itinerary) (int64, error) {
	var saved idPayload
	if err := c.do(ctx, http.MethodPut, "/itineraries/save", it, &saved); err != nil {
		return 0, err
	}
	return saved.ID, nil
}

func (c *Client) CreateUserEvent(ctx context.Context, fields EventFields) (int64, error) {
	var created idPayload
	if err := c.do(ctx, http.MethodPost, "/events/user-events", fields, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) SearchEvents(ctx context.Context, filters SearchFilters) ([]Event, error) {
	var found searchPayload
	if err := c.do(ctx, http.MethodPost, "/events/search", filters, &found); err != nil {
		return nil, err
	}
	return found.Events, nil
}

func (c *Client) DeleteUserEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/user-events/%d", id), nil, nil)
}
