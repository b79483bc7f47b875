package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// client wraps http.Client with the base URL of the service under test.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// checkHealth verifies the service answers on /healthz.
func (c *client) checkHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// listActivities fetches the current roster.
func (c *client) listActivities(ctx context.Context) (map[string]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list activities: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read list response: %w", err)
	}

	out := make(map[string]Activity)
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return out, nil
}

// mutate performs a signup (POST) or unregister (DELETE) call and returns the
// response status with the decoded error detail, if any.
func (c *client) mutate(ctx context.Context, method, activity, action, email string) (int, string, error) {
	target := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL,
		url.PathEscape(activity),
		action,
		url.QueryEscape(email),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, "", fmt.Errorf("create %s request: %w", action, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%s %s: %w", action, activity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read %s response: %w", action, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		_ = json.Unmarshal(body, &apiErr)
		return resp.StatusCode, apiErr.Detail, nil
	}
	return resp.StatusCode, "", nil
}

func (c *client) signup(ctx context.Context, activity, email string) (int, string, error) {
	return c.mutate(ctx, http.MethodPost, activity, "signup", email)
}

func (c *client) unregister(ctx context.Context, activity, email string) (int, string, error) {
	return c.mutate(ctx, http.MethodDelete, activity, "unregister", email)
}
