package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
	"github.com/lazharichir/showdown/metrics"
)

// duelRequest represents a request to play two hands against each other
type duelRequest struct {
	HandA string `json:"handA"`
	HandB string `json:"handB"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// rejectionReason maps a hand validation error to a metrics label
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, cards.ErrInvalidCardCount):
		return "invalid_card_count"
	case errors.Is(err, cards.ErrInvalidRankSymbol):
		return "invalid_rank_symbol"
	case errors.Is(err, cards.ErrInvalidSuitSymbol):
		return "invalid_suit_symbol"
	case errors.Is(err, cards.ErrMultipleWildcards):
		return "multiple_wildcards"
	default:
		return "other"
	}
}

// handleDuels serves the duel history and accepts new duels
func (s *Server) handleDuels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListDuels(w, r)
	case http.MethodPost:
		s.handlePlayDuel(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

// handleListDuels returns recently played duels, newest first
func (s *Server) handleListDuels(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	duels, err := s.duels.Recent(limit)
	if err != nil {
		s.log.Error("failed to load duel history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "history_unavailable", err)
		return
	}

	writeJSON(w, http.StatusOK, duels)
}

// handlePlayDuel evaluates a submitted pair of hands
func (s *Server) handlePlayDuel(w http.ResponseWriter, r *http.Request) {
	var req duelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err)
		return
	}

	duel, err := s.playDuel(req.HandA, req.HandB)
	if err != nil {
		writeError(w, http.StatusBadRequest, rejectionReason(err), err)
		return
	}

	writeJSON(w, http.StatusOK, duel)
}

// handleHealthz reports liveness and the number of connected sessions
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Sessions: s.connMgr.Count(),
	})
}

// playDuel parses and evaluates both hands, records the duel, and
// broadcasts it to connected sessions. It is shared by the REST and
// WebSocket entry points.
func (s *Server) playDuel(handAInput, handBInput string) (Duel, error) {
	start := time.Now()

	evalA, err := hands.EvaluateString(handAInput)
	if err != nil {
		err = fmt.Errorf("hand A: %w", err)
		metrics.RecordRejectedHand(rejectionReason(err))
		return Duel{}, err
	}

	evalB, err := hands.EvaluateString(handBInput)
	if err != nil {
		err = fmt.Errorf("hand B: %w", err)
		metrics.RecordRejectedHand(rejectionReason(err))
		return Duel{}, err
	}

	outcome := hands.Compare(evalA, evalB)
	duel := Duel{
		ID:       uuid.NewString(),
		HandA:    newHandResult(handAInput, evalA),
		HandB:    newHandResult(handBInput, evalB),
		Outcome:  outcome.String(),
		Winner:   winnerLabel(outcome),
		PlayedAt: time.Now().UTC(),
	}

	if err := s.duels.Append(duel); err != nil {
		s.log.Warn("failed to record duel", zap.Error(err))
	}

	metrics.RecordDuel(outcome.String())
	metrics.RecordDuelDuration(float64(time.Since(start).Microseconds()) / 1000)

	s.log.Info("duel played",
		zap.String("id", duel.ID),
		zap.String("outcome", duel.Outcome),
		zap.String("handA", duel.HandA.Rank),
		zap.String("handB", duel.HandB.Rank),
	)

	s.broadcastDuel(duel)

	return duel, nil
}

func newHandResult(input string, evaluation hands.HandEvaluation) HandResult {
	return HandResult{
		Input:   input,
		Best:    evaluation.HandCards.String(),
		Rank:    evaluation.Rank.String(),
		Kickers: evaluation.Kickers,
	}
}

func winnerLabel(outcome hands.Outcome) string {
	switch outcome {
	case hands.FirstWins:
		return "A"
	case hands.SecondWins:
		return "B"
	default:
		return ""
	}
}
