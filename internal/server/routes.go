package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lazypower/pond/internal/engine"
)

type userRequest struct {
	GroupID  string `json:"group_id"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

func (u userRequest) valid() bool {
	return u.GroupID != "" && u.UserID != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	res, err := s.engine.Draw(req.GroupID, req.UserID, req.Nickname)
	switch {
	case errors.Is(err, engine.ErrBlocked):
		drawsTotal.WithLabelValues("blocked").Inc()
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":   "blocked",
			"message": res.Message,
		})
		return
	case errors.Is(err, engine.ErrUnlucky):
		// The cost was charged; report the failed draw as a normal body.
		drawsTotal.WithLabelValues("unlucky").Inc()
		if res.EventScope != "" {
			eventsTotal.WithLabelValues(res.EventScope).Inc()
		}
		writeJSON(w, http.StatusOK, res)
		return
	case err != nil:
		s.log.Error("draw failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if res.EventScope != "" {
		eventsTotal.WithLabelValues(res.EventScope).Inc()
	}
	if res.Success {
		drawsTotal.WithLabelValues("caught").Inc()
		drawRarityTotal.WithLabelValues(string(res.Catch.Species.Rarity)).Inc()
	} else {
		drawsTotal.WithLabelValues("empty").Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBait(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	res, err := s.engine.AddBait(req.GroupID, req.UserID, req.Nickname)
	if errors.Is(err, engine.ErrInsufficientFunds) {
		writeError(w, http.StatusPaymentRequired, "insufficient karma")
		return
	}
	if err != nil {
		s.log.Error("bait failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	baitTotal.Inc()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleKarma(w http.ResponseWriter, r *http.Request) {
	var req struct {
		userRequest
		Delta int64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	today, total, err := s.engine.AdjustKarma(req.GroupID, req.UserID, req.Nickname, req.Delta)
	if err != nil {
		s.log.Error("karma adjust failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	karmaAdjustTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]int64{
		"today_karma": today,
		"total_karma": total,
	})
}

// handleProfile accepts profile text written by an external analyzer.
// The engine never reads these fields; they are stored for other consumers.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		userRequest
		Profile string   `json:"profile"`
		Tags    []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	if err := s.db.UpdateProfile(req.GroupID, req.UserID, req.Profile, req.Tags); err != nil {
		s.log.Error("profile update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("group_id")
	userID := r.URL.Query().Get("user_id")
	if groupID == "" || userID == "" {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	value, err := s.engine.EnsureDailyValue(groupID, userID)
	if err != nil {
		s.log.Error("daily value failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"value": value})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("group_id")
	userID := r.URL.Query().Get("user_id")
	if groupID == "" || userID == "" {
		writeError(w, http.StatusBadRequest, "group_id and user_id required")
		return
	}

	summary, err := s.engine.Collection(groupID, userID)
	if err != nil {
		s.log.Error("collection failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "group_id required")
		return
	}

	entries, err := s.engine.Rankings(groupID, kind)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown ranking kind")
		return
	}
	if err != nil {
		s.log.Error("rankings failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"kind":    kind,
		"entries": entries,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "group_id required")
		return
	}

	// ?id= narrows the query to a single event's active flag.
	if eventID := r.URL.Query().Get("id"); eventID != "" {
		active, err := s.db.EventActive(groupID, eventID, time.Now())
		if err != nil {
			s.log.Error("event lookup failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": eventID, "active": active})
		return
	}

	events, err := s.engine.ActiveEvents(groupID)
	if err != nil {
		s.log.Error("events failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	removed, err := s.engine.CleanupExpired()
	if err != nil {
		s.log.Error("sweep failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sweepRemovedTotal.Add(float64(removed))
	writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
}
