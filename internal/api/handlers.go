package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blacksite-games/incursion-engine/internal/challenges"
	"github.com/blacksite-games/incursion-engine/internal/game"
	"github.com/blacksite-games/incursion-engine/internal/missions"
	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "ready",
		"game_active": s.engine.Active(),
	})
}

// State

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.engine.Snapshot())
}

// Game lifecycle handlers

func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request) {
	s.engine.Start()
	s.missions.LogEvent("game_started", map[string]any{
		"duration_minutes": s.engine.SessionDuration(),
	})
	respondJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handleGameStop(w http.ResponseWriter, r *http.Request) {
	s.engine.Stop()
	s.missions.LogEvent("game_stopped", nil)
	respondJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handleGameReset(w http.ResponseWriter, r *http.Request) {
	s.engine.Reset()
	s.missions.ResetAll()
	s.session.Reset()
	respondJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"duration_minutes": s.engine.SessionDuration(),
		"game_active":      s.engine.Active(),
	})
}

func (s *Server) handleGameSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionConfig
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	applied := s.engine.SetSessionDuration(req.DurationMinutes)
	respondJSON(w, http.StatusOK, map[string]int{
		"duration_minutes": applied,
	})
}

// Sector handlers

func (s *Server) handleSectorAdjust(w http.ResponseWriter, r *http.Request) {
	var req models.SectorAdjustment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.SectorID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "sector_id is required")
		return
	}

	result, err := s.engine.AdjustSector(req.SectorID, req.Adjustment, req.Lock)
	if err != nil {
		if errors.Is(err, game.ErrSectorNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "sector not found")
			return
		}
		slog.Error("failed to adjust sector", "error", err, "sector", req.SectorID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to adjust sector")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSectorAdjustAll(w http.ResponseWriter, r *http.Request) {
	var req models.AllSectorAdjustment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	results := s.engine.AdjustAllSectors(req.Adjustment)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"affected": results,
		"total":    len(results),
	})
}

func (s *Server) handleSectorSet(w http.ResponseWriter, r *http.Request) {
	var req models.SectorSet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.SectorID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "sector_id is required")
		return
	}

	result, err := s.engine.SetSectorCompromise(req.SectorID, req.Compromise)
	if err != nil {
		if errors.Is(err, game.ErrSectorNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "sector not found")
			return
		}
		slog.Error("failed to set sector", "error", err, "sector", req.SectorID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to set sector")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSectorLock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lock := r.URL.Query().Get("unlock") == ""

	if err := s.engine.LockSector(id, lock); err != nil {
		if errors.Is(err, game.ErrSectorNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "sector not found")
			return
		}
		slog.Error("failed to lock sector", "error", err, "sector", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to lock sector")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"sector_id": id,
		"is_locked": lock,
	})
}

func (s *Server) handleSectorSecure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.engine.SecureSector(id); err != nil {
		if errors.Is(err, game.ErrSectorNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "sector not found")
			return
		}
		slog.Error("failed to secure sector", "error", err, "sector", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to secure sector")
		return
	}

	s.missions.LogEvent("sector_secured", map[string]any{"sector_id": id})
	respondJSON(w, http.StatusOK, map[string]any{
		"sector_id":  id,
		"is_secured": true,
	})
}

// Password handlers

func (s *Server) handlePasswordTry(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordAttempt
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "code is required")
		return
	}

	result := s.engine.TryPassword(req.Code)
	s.missions.LogEvent("password_attempt", map[string]any{
		"code":    req.Code,
		"success": result.Success,
	})

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePasswordAdd(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "code is required")
		return
	}
	if req.Reduction <= 0 {
		respondError(w, http.StatusBadRequest, "validation_error", "reduction_percent must be positive")
		return
	}

	pw := models.Password{
		Code:         req.Code,
		TargetSector: req.TargetSector,
		Reduction:    req.Reduction,
		OneTime:      req.OneTime,
		Hint:         req.Hint,
	}
	if err := s.engine.AddPassword(pw); err != nil {
		if errors.Is(err, game.ErrPasswordExists) {
			respondError(w, http.StatusConflict, "already_exists", "password code already registered")
			return
		}
		slog.Error("failed to add password", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add password")
		return
	}

	respondJSON(w, http.StatusCreated, pw)
}

func (s *Server) handlePasswordRemove(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := s.engine.RemovePassword(code); err != nil {
		if errors.Is(err, game.ErrPasswordNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "password not found")
			return
		}
		slog.Error("failed to remove password", "error", err, "code", code)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "password removed",
	})
}

func (s *Server) handleListPasswords(w http.ResponseWriter, r *http.Request) {
	passwords := s.engine.Passwords()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"passwords": passwords,
		"total":     len(passwords),
	})
}

// Mission handlers

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	list := s.missions.List()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"missions": list,
		"total":    len(list),
	})
}

func (s *Server) handleMissionComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.decodeMissionTrigger(w, r)
	if !ok {
		return
	}

	outcome, err := s.missions.Complete(id)
	if err != nil {
		s.respondMissionError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleMissionFailed(w http.ResponseWriter, r *http.Request) {
	id, ok := s.decodeMissionTrigger(w, r)
	if !ok {
		return
	}

	outcome, err := s.missions.Fail(id)
	if err != nil {
		s.respondMissionError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) decodeMissionTrigger(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.MissionTrigger
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return "", false
	}
	if req.MissionID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "mission_id is required")
		return "", false
	}
	return req.MissionID, true
}

func (s *Server) respondMissionError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, missions.ErrMissionNotFound):
		respondError(w, http.StatusNotFound, "not_found", "mission not found")
	case errors.Is(err, missions.ErrAlreadyCompleted):
		respondError(w, http.StatusConflict, "already_completed", "mission already completed")
	case errors.Is(err, missions.ErrNoAttemptsRemaining):
		respondError(w, http.StatusConflict, "no_attempts_remaining", "mission has no attempts remaining")
	default:
		slog.Error("mission trigger failed", "error", err, "mission", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "mission trigger failed")
	}
}

func (s *Server) handleMissionReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.missions.Reset(id); err != nil {
		if errors.Is(err, missions.ErrMissionNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "mission not found")
			return
		}
		slog.Error("failed to reset mission", "error", err, "mission", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to reset mission")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "mission reset",
	})
}

func (s *Server) handleMissionCreate(w http.ResponseWriter, r *http.Request) {
	var req models.MissionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "id is required")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}

	mission := models.Mission{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		Scope:            models.AdjustmentScope(req.AdjustmentType),
		TargetSector:     req.TargetSector,
		TargetSectors:    req.TargetSectors,
		SuccessReduction: req.SuccessReduction,
		FailurePenalty:   req.FailurePenalty,
		LockOnComplete:   req.LockOnComplete,
		MaxAttempts:      req.MaxAttempts,
	}
	if err := s.missions.Add(mission); err != nil {
		if errors.Is(err, missions.ErrMissionExists) {
			respondError(w, http.StatusConflict, "already_exists", "mission id already registered")
			return
		}
		slog.Error("failed to create mission", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create mission")
		return
	}

	created, _ := s.missions.Get(req.ID)
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleMissionDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.missions.Remove(id); err != nil {
		if errors.Is(err, missions.ErrMissionNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "mission not found")
			return
		}
		slog.Error("failed to delete mission", "error", err, "mission", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete mission")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "mission deleted",
	})
}

// Event log

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	events := s.missions.Events(limit)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}

// Challenge handlers

type challengeSummary struct {
	ID         string               `json:"id"`
	Type       models.ChallengeType `json:"type"`
	Difficulty string               `json:"difficulty"`
	RewardType models.RewardType    `json:"reward_type"`
	Used       bool                 `json:"used"`
}

func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	all := s.library.All()
	summaries := make([]challengeSummary, 0, len(all))
	for _, c := range all {
		summaries = append(summaries, challengeSummary{
			ID:         c.ID,
			Type:       c.Type,
			Difficulty: c.Difficulty,
			RewardType: c.RewardType,
			Used:       s.session.Used(c.ID),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"challenges": summaries,
		"total":      len(summaries),
	})
}

func (s *Server) handleChallengeNext(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = challenges.DifficultyForThreat(s.engine.GlobalThreat())
	}
	ctype := models.ChallengeType(r.URL.Query().Get("type"))

	challenge, err := s.session.Random(difficulty, ctype)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "no challenge available")
		return
	}

	text := s.session.Start(challenge)
	s.missions.LogEvent("challenge_started", map[string]any{
		"challenge_id": challenge.ID,
		"difficulty":   challenge.Difficulty,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"challenge_id": challenge.ID,
		"type":         challenge.Type,
		"difficulty":   challenge.Difficulty,
		"text":         text,
	})
}

func (s *Server) handleChallengeInject(w http.ResponseWriter, r *http.Request) {
	var req models.ChallengeInject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ChallengeID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "challenge_id is required")
		return
	}

	text, err := s.session.Inject(req.ChallengeID)
	if err != nil {
		if errors.Is(err, challenges.ErrChallengeNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "challenge not found")
			return
		}
		slog.Error("failed to inject challenge", "error", err, "challenge", req.ChallengeID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to inject challenge")
		return
	}

	s.missions.LogEvent("challenge_started", map[string]any{
		"challenge_id": req.ChallengeID,
		"injected":     true,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"challenge_id": req.ChallengeID,
		"text":         text,
	})
}

func (s *Server) handleChallengeAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.ChallengeAnswer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.session.Verify(req.Answer)
	if err != nil {
		if errors.Is(err, challenges.ErrNoActiveChallenge) {
			respondError(w, http.StatusConflict, "no_active_challenge", "no active challenge")
			return
		}
		slog.Error("failed to verify answer", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to verify answer")
		return
	}

	s.resolveChallenge(result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleChallengeVerify(w http.ResponseWriter, r *http.Request) {
	var req models.ChallengeForceVerify
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.session.ForceVerify(req.IsCorrect)
	if err != nil {
		if errors.Is(err, challenges.ErrNoActiveChallenge) {
			respondError(w, http.StatusConflict, "no_active_challenge", "no active challenge")
			return
		}
		slog.Error("failed to force-verify challenge", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to force-verify challenge")
		return
	}

	s.resolveChallenge(result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleChallengeReset(w http.ResponseWriter, r *http.Request) {
	s.session.Reset()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "challenge session reset",
	})
}

// Hint broadcast

func (s *Server) handleHintSend(w http.ResponseWriter, r *http.Request) {
	var req models.HintSend
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "message is required")
		return
	}

	s.hub.BroadcastHint(req.Message)
	s.missions.LogEvent("hint_sent", map[string]any{"message": req.Message})

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "hint sent",
	})
}
