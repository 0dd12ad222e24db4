package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/session"
)

// SettleRequest carries a trusted on-chain snapshot
type SettleRequest struct {
	Balance   decimal.Decimal            `json:"balance" validate:"gte=0"`
	Inventory map[string]decimal.Decimal `json:"inventory" validate:"dive,keys,required,endkeys,gte=0"`
}

// HistoryResponse lists logged lifecycle events of one farm, newest first
type HistoryResponse struct {
	FarmID string           `json:"farmId"`
	Events []eventlog.Event `json:"events"`
}

// FarmHandler serves the farm session endpoints
type FarmHandler struct {
	sessions session.Service
	history  eventlog.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(sessions session.Service, history eventlog.Service) *FarmHandler {
	return &FarmHandler{sessions: sessions, history: history}
}

// HandleCreateFarm creates a farm with the starter state
// POST /api/v1/farms
func (h *FarmHandler) HandleCreateFarm(w http.ResponseWriter, r *http.Request) {
	farm, err := h.sessions.CreateFarm(r.Context())
	if err != nil {
		respondServiceError(w, r, "create farm", err)
		return
	}
	respondJSON(w, http.StatusCreated, farm)
}

// HandleGetFarm returns the current state of a farm
// GET /api/v1/farms/{id}
func (h *FarmHandler) HandleGetFarm(w http.ResponseWriter, r *http.Request) {
	farm, err := h.sessions.GetFarm(r.Context(), chi.URLParam(r, ParamFarmID))
	if err != nil {
		respondServiceError(w, r, "get farm", err)
		return
	}
	respondJSON(w, http.StatusOK, farm)
}

// RequireFarm answers 404 before next runs when the {id} farm does not exist
func (h *FarmHandler) RequireFarm(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.sessions.GetFarm(r.Context(), chi.URLParam(r, ParamFarmID)); err != nil {
			respondServiceError(w, r, "get farm", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleApplyEvent applies one wire event, e.g.
// {"type":"fruit.planted","expansionIndex":0,"index":0,"seed":"Apple Seed"}
// POST /api/v1/farms/{id}/events
func (h *FarmHandler) HandleApplyEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamFarmID)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	result, err := h.sessions.Apply(r.Context(), id, raw)
	if err != nil {
		if domain.IsRuleViolation(err) {
			logger.FromContext(r.Context()).Debug(LogMsgEventRejected, "farm_id", id, "reason", err.Error())
		}
		respondServiceError(w, r, "apply event", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSettle records a trusted on-chain snapshot
// PUT /api/v1/farms/{id}/onchain
func (h *FarmHandler) HandleSettle(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Settle"); err != nil {
		return
	}

	farm, err := h.sessions.Settle(r.Context(), chi.URLParam(r, ParamFarmID), domain.OnChainSnapshot{
		Balance:   req.Balance,
		Inventory: domain.Inventory(req.Inventory),
	})
	if err != nil {
		respondServiceError(w, r, "settle farm", err)
		return
	}

	respondJSON(w, http.StatusOK, farm)
}

// HandleGetHistory returns the logged events of a farm
// GET /api/v1/farms/{id}/events?limit=N
func (h *FarmHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamFarmID)

	limit, ok := GetOptionalIntQueryParam(r, w, QueryLimit, eventlog.DefaultHistoryLimit)
	if !ok {
		return
	}

	// 404 for unknown farms rather than an empty list
	if _, err := h.sessions.GetFarm(r.Context(), id); err != nil {
		respondServiceError(w, r, "get history", err)
		return
	}

	events, err := h.history.History(r.Context(), id, limit)
	if err != nil {
		respondServiceError(w, r, "get history", err)
		return
	}
	if events == nil {
		events = []eventlog.Event{}
	}

	respondJSON(w, http.StatusOK, HistoryResponse{FarmID: id, Events: events})
}

// HandleGetCacheStats returns farm state cache statistics
// GET /api/v1/admin/cache/stats
func (h *FarmHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sessions.GetCacheStats())
}
