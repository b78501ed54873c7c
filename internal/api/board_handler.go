package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/commboard-api/internal/api/shared"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/service"
)

// BoardHandler handles board-related HTTP requests.
type BoardHandler struct {
	boardService service.BoardService
	userService  service.UserService
	logger       *slog.Logger
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(
	boardService service.BoardService,
	userService service.UserService,
	logger *slog.Logger,
) *BoardHandler {
	if boardService == nil {
		panic("boardService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardHandler{
		boardService: boardService,
		userService:  userService,
		logger:       logger.With(slog.String("component", "board_handler")),
	}
}

// GetBoard handles GET /api/board requests.
// It registers the authenticated user on first contact (mirroring the
// first message a user ever sends through the transport) and returns the
// adaptively ordered card board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	displayName := shared.DisplayNameFromContext(r.Context())
	if displayName == "" {
		displayName = "board user"
	}

	if _, err := h.userService.EnsureRegistered(r.Context(), userID, displayName); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	cards, err := h.boardService.GetBoard(r.Context(), userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to load board"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("board served",
		slog.Int64("user_id", userID),
		slog.Int("cards", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, BoardResponse{
		Cards: cardsToResponse(cards),
	})
}
