// Package client is a Go SDK for the incursion-engine HTTP API. It is used by
// operator consoles and prop controllers that drive a game session remotely.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Client talks to an incursion-engine instance
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new incursion-engine client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// State retrieves the current game snapshot
func (c *Client) State(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.call(ctx, "GET", "/api/state", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// StartGame begins the session and the attack loop
func (c *Client) StartGame(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.call(ctx, "POST", "/api/game/start", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// StopGame pauses the attack loop
func (c *Client) StopGame(ctx context.Context) error {
	return c.call(ctx, "POST", "/api/game/stop", nil, nil)
}

// ResetGame restores the initial state
func (c *Client) ResetGame(ctx context.Context) error {
	return c.call(ctx, "POST", "/api/game/reset", nil, nil)
}

// SetSessionDuration configures the session length in minutes. The server
// clamps out-of-range values and returns the applied duration.
func (c *Client) SetSessionDuration(ctx context.Context, minutes int) (int, error) {
	var resp struct {
		DurationMinutes int `json:"duration_minutes"`
	}
	req := models.SessionConfig{DurationMinutes: minutes}
	if err := c.call(ctx, "POST", "/api/game/session", req, &resp); err != nil {
		return 0, err
	}
	return resp.DurationMinutes, nil
}

// TryPassword attempts to redeem a countermeasure code
func (c *Client) TryPassword(ctx context.Context, code string) (*models.PasswordResult, error) {
	var result models.PasswordResult
	req := models.PasswordAttempt{Code: code}
	if err := c.call(ctx, "POST", "/api/password/try", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddPassword registers a new countermeasure code
func (c *Client) AddPassword(ctx context.Context, req models.PasswordCreate) (*models.Password, error) {
	var pw models.Password
	if err := c.call(ctx, "POST", "/api/password/add", req, &pw); err != nil {
		return nil, err
	}
	return &pw, nil
}

// RemovePassword deletes a countermeasure code
func (c *Client) RemovePassword(ctx context.Context, code string) error {
	return c.call(ctx, "DELETE", "/api/password/"+code, nil, nil)
}

// AdjustSector applies a signed compromise delta to one sector
func (c *Client) AdjustSector(ctx context.Context, req models.SectorAdjustment) (*models.AdjustResult, error) {
	var result models.AdjustResult
	if err := c.call(ctx, "POST", "/api/sector/adjust", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdjustAllSectors applies a signed compromise delta to every sector
func (c *Client) AdjustAllSectors(ctx context.Context, delta float64) ([]models.AdjustResult, error) {
	var resp struct {
		Affected []models.AdjustResult `json:"affected"`
		Total    int                   `json:"total"`
	}
	req := models.AllSectorAdjustment{Adjustment: delta}
	if err := c.call(ctx, "POST", "/api/sector/adjust-all", req, &resp); err != nil {
		return nil, err
	}
	return resp.Affected, nil
}

// SecureSector permanently removes a sector from play
func (c *Client) SecureSector(ctx context.Context, id string) error {
	return c.call(ctx, "POST", "/api/sector/secure/"+id, nil, nil)
}

// LockSector freezes a sector's compromise
func (c *Client) LockSector(ctx context.Context, id string) error {
	return c.call(ctx, "POST", "/api/sector/lock/"+id, nil, nil)
}

// ListMissions retrieves all registered missions
func (c *Client) ListMissions(ctx context.Context) ([]models.Mission, error) {
	var resp struct {
		Missions []models.Mission `json:"missions"`
		Total    int              `json:"total"`
	}
	if err := c.call(ctx, "GET", "/api/missions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Missions, nil
}

// CompleteMission reports a physical puzzle solved
func (c *Client) CompleteMission(ctx context.Context, id string) (*models.MissionOutcome, error) {
	var outcome models.MissionOutcome
	req := models.MissionTrigger{MissionID: id}
	if err := c.call(ctx, "POST", "/api/mission/complete", req, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// FailMission reports a physical puzzle failed
func (c *Client) FailMission(ctx context.Context, id string) (*models.MissionOutcome, error) {
	var outcome models.MissionOutcome
	req := models.MissionTrigger{MissionID: id}
	if err := c.call(ctx, "POST", "/api/mission/failed", req, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// Events retrieves the most recent audit log entries, oldest first
func (c *Client) Events(ctx context.Context, limit int) ([]models.Event, error) {
	path := "/api/events"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var resp struct {
		Events []models.Event `json:"events"`
		Total  int            `json:"total"`
	}
	if err := c.call(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// NextChallenge asks the server to pick and activate a challenge
func (c *Client) NextChallenge(ctx context.Context, difficulty string) (string, error) {
	path := "/api/challenge/next"
	if difficulty != "" {
		path += "?difficulty=" + difficulty
	}

	var resp struct {
		ChallengeID string `json:"challenge_id"`
		Text        string `json:"text"`
	}
	if err := c.call(ctx, "GET", path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

// AnswerChallenge submits a player answer for the active challenge
func (c *Client) AnswerChallenge(ctx context.Context, answer string) (*models.VerifyResult, error) {
	var result models.VerifyResult
	req := models.ChallengeAnswer{Answer: answer}
	if err := c.call(ctx, "POST", "/api/challenge/answer", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendHint broadcasts a free-text hint to connected displays
func (c *Client) SendHint(ctx context.Context, message string) error {
	req := models.HintSend{Message: message}
	return c.call(ctx, "POST", "/api/hint/send", req, nil)
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, "GET", "/health", nil, nil)
}

// call performs a request and unwraps the response envelope into out
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("API error: %s - %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal data: %w", err)
		}
	}

	return nil
}
