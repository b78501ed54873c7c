package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/domain/ranking"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// BoardService produces the adaptively ordered card board for a user.
type BoardService interface {
	// GetBoard returns the full card catalog ordered for the given user,
	// highest priority first. The ranking is recomputed from the complete
	// selection history on every call; there is no cache, so the result
	// always reflects the latest recorded events.
	//
	// An empty catalog yields an empty slice, not an error. Store failures
	// propagate verbatim; no partial or stale ranking is ever returned.
	GetBoard(ctx context.Context, userID int64) ([]*domain.Card, error)
}

// Verify interface compliance at compile time
var _ BoardService = (*boardService)(nil)

// boardService implements BoardService on top of the card catalog and the
// selection event log. It holds no mutable state and is safe for concurrent
// use across users.
type boardService struct {
	cardStore  store.CardStore
	eventStore store.SelectionEventStore
	params     *ranking.Params
	logger     *slog.Logger
}

// NewBoardService creates a new BoardService.
// If params is nil, default ranking parameters are used.
// If logger is nil, a default logger will be used.
func NewBoardService(
	cardStore store.CardStore,
	eventStore store.SelectionEventStore,
	params *ranking.Params,
	logger *slog.Logger,
) BoardService {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if eventStore == nil {
		panic("eventStore cannot be nil")
	}

	if params == nil {
		params = ranking.NewDefaultParams()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &boardService{
		cardStore:  cardStore,
		eventStore: eventStore,
		params:     params,
		logger:     logger.With(slog.String("component", "board_service")),
	}
}

// GetBoard implements BoardService.GetBoard.
func (s *boardService) GetBoard(ctx context.Context, userID int64) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cardStore.List(ctx)
	if err != nil {
		log.Error("failed to list card catalog",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list card catalog: %w", err)
	}

	if len(cards) == 0 {
		log.Warn("card catalog is empty", slog.Int64("user_id", userID))
		return []*domain.Card{}, nil
	}

	counts, err := s.eventStore.CountByCard(ctx, userID)
	if err != nil {
		log.Error("failed to load selection counts",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to load selection counts: %w", err)
	}

	ranked := ranking.Rank(cards, counts, s.params)

	log.Debug("board ranked",
		slog.Int64("user_id", userID),
		slog.Int("cards", len(ranked)))
	return ranked, nil
}
