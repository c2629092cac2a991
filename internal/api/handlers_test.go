package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blacksite-games/incursion-engine/internal/challenges"
	"github.com/blacksite-games/incursion-engine/internal/config"
	"github.com/blacksite-games/incursion-engine/internal/game"
	"github.com/blacksite-games/incursion-engine/internal/missions"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	engine := game.New(60)
	manager := missions.NewManager(engine)
	library := challenges.NewLibrary()
	session := challenges.NewSession(library)
	hub := NewHub()

	srv := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0},
		engine, manager, library, session, hub)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, envelope
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, env := doJSON(t, ts, "GET", "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !env.Success {
		t.Error("health should report success")
	}
}

func TestStateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, env := doJSON(t, ts, "GET", "/api/state", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	data, _ := json.Marshal(env.Data)
	var snap struct {
		Sectors      map[string]json.RawMessage `json:"sectors"`
		GlobalThreat float64                    `json:"global_threat_level"`
		Active       bool                       `json:"game_active"`
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Sectors) != 12 {
		t.Errorf("expected 12 sectors, got %d", len(snap.Sectors))
	}
	if snap.Active {
		t.Error("game should start inactive")
	}
}

func TestPasswordTryInvalidCode(t *testing.T) {
	ts := newTestServer(t)

	// Redemption is fail-soft: HTTP 200 with success=false in the payload.
	resp, env := doJSON(t, ts, "POST", "/api/password/try", map[string]string{"code": "NOT_A_CODE"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	data, _ := json.Marshal(env.Data)
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Success {
		t.Error("invalid code should fail redemption")
	}
}

func TestPasswordTryValidation(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, ts, "POST", "/api/password/try", map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty code should 400, got %d", resp.StatusCode)
	}
}

func TestSectorAdjustEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, env := doJSON(t, ts, "POST", "/api/sector/adjust", map[string]any{
		"sector_id":  "financial",
		"adjustment": -5,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !env.Success {
		t.Error("expected success envelope")
	}

	resp, _ = doJSON(t, ts, "POST", "/api/sector/adjust", map[string]any{
		"sector_id":  "submarine",
		"adjustment": -5,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown sector should 404, got %d", resp.StatusCode)
	}
}

func TestMissionEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, ts, "POST", "/api/mission/complete", map[string]string{"mission_id": "ghost"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown mission should 404, got %d", resp.StatusCode)
	}

	resp, env := doJSON(t, ts, "POST", "/api/mission/complete", map[string]string{"mission_id": "firewall_breach"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (env: %+v)", resp.StatusCode, env)
	}

	resp, _ = doJSON(t, ts, "POST", "/api/mission/complete", map[string]string{"mission_id": "firewall_breach"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("double completion should 409, got %d", resp.StatusCode)
	}
}

func TestSessionDurationClampedOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	_, env := doJSON(t, ts, "POST", "/api/game/session", map[string]int{"duration_minutes": 500})

	data, _ := json.Marshal(env.Data)
	var resp struct {
		DurationMinutes int `json:"duration_minutes"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if resp.DurationMinutes != 120 {
		t.Errorf("expected duration clamped to 120, got %d", resp.DurationMinutes)
	}
}

func TestChallengeFlow(t *testing.T) {
	ts := newTestServer(t)

	// No active challenge yet.
	resp, _ := doJSON(t, ts, "POST", "/api/challenge/answer", map[string]string{"answer": "echo"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("answer without active challenge should 409, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, ts, "POST", "/api/challenge/inject", map[string]string{"challenge_id": "riddle_echo"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("inject failed with %d", resp.StatusCode)
	}

	resp, env := doJSON(t, ts, "POST", "/api/challenge/answer", map[string]string{"answer": "an echo"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("answer failed with %d", resp.StatusCode)
	}

	data, _ := json.Marshal(env.Data)
	var result struct {
		Correct bool `json:"correct"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Correct {
		t.Error("expected answer accepted")
	}
}

func TestEventsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, "POST", "/api/password/try", map[string]string{"code": "WRONG"})
	doJSON(t, ts, "POST", "/api/password/try", map[string]string{"code": "ALSO_WRONG"})

	_, env := doJSON(t, ts, "GET", "/api/events?limit=1", nil)
	data, _ := json.Marshal(env.Data)
	var resp struct {
		Events []json.RawMessage `json:"events"`
		Total  int               `json:"total"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected limit respected, got %d events", resp.Total)
	}
}
