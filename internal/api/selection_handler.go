package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/commboard-api/internal/api/shared"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/service"
)

// SelectionHandler handles selection-related HTTP requests.
type SelectionHandler struct {
	selectionService service.SelectionService
	boardService     service.BoardService
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(
	selectionService service.SelectionService,
	boardService service.BoardService,
	logger *slog.Logger,
) *SelectionHandler {
	if selectionService == nil {
		panic("selectionService cannot be nil")
	}
	if boardService == nil {
		panic("boardService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SelectionHandler{
		selectionService: selectionService,
		boardService:     boardService,
		validator:        validator.New(),
		logger:           logger.With(slog.String("component", "selection_handler")),
	}
}

// RecordSelection handles POST /api/selections requests.
// It runs the selection pipeline (record + notify) and then fetches the
// refreshed board order, so the client can re-render in one round trip.
// Notification problems surface through the outcome field, never as an
// HTTP error: by the time the notification runs, the selection is already
// durably recorded.
func (h *SelectionHandler) RecordSelection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid selection request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		log.Warn("selection request failed validation", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "card_id must be a positive integer")
		return
	}

	result, err := h.selectionService.RecordSelection(r.Context(), userID, req.CardID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to record selection"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	// The selection is committed even if this refresh fails, so a board
	// error here must not hide the recorded outcome.
	board, err := h.boardService.GetBoard(r.Context(), userID)
	if err != nil {
		log.Error("failed to refresh board after selection",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		board = nil
	}

	log.Debug("selection handled",
		slog.Int64("user_id", userID),
		slog.Int64("card_id", req.CardID),
		slog.String("outcome", string(result.Outcome)))
	shared.RespondWithJSON(w, r, http.StatusCreated, SelectionResponse{
		Card:       cardToResponse(result.Card),
		Outcome:    result.Outcome,
		RecordedAt: result.Event.CreatedAt,
		Board:      cardsToResponse(board),
	})
}
