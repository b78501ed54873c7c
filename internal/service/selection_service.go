package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/notify"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// NotificationOutcome describes how the caregiver notification leg of a
// selection ended. All three values are terminal-success states of the
// pipeline: the selection event is already durably recorded by the time any
// of them is produced.
type NotificationOutcome string

const (
	// OutcomeNotificationSent means the notification was handed to the
	// transport successfully.
	OutcomeNotificationSent NotificationOutcome = "sent"

	// OutcomeNoGuardian means the user has no caregiver bound. This is an
	// expected configuration state, not an error.
	OutcomeNoGuardian NotificationOutcome = "no_guardian"

	// OutcomeNotificationFailed means dispatch to the transport failed.
	// The selection itself is recorded; callers surface this as a warning.
	OutcomeNotificationFailed NotificationOutcome = "notification_failed"
)

// SelectionResult is the outcome of one recorded selection.
type SelectionResult struct {
	Event   *domain.SelectionEvent
	Card    *domain.Card
	Outcome NotificationOutcome
}

// SelectionService is the selection event pipeline: it records a user's
// card choice and relays it to the bound caregiver.
type SelectionService interface {
	// RecordSelection validates the card, durably appends a selection
	// event, and dispatches a best-effort caregiver notification.
	//
	// The pipeline for one selection is
	//
	//	Validated -> Recorded -> {NoGuardian | NotificationSent | NotificationFailed}
	//
	// and only validation or persistence failures are errors:
	//   - store.ErrCardNotFound if the card is unknown (nothing recorded)
	//   - store.ErrUserNotFound if the user is unknown
	//   - persistence errors from the event append, propagated verbatim
	//
	// A notification failure never rolls back the recorded event and never
	// fails the call; it is reported through the result's Outcome. Once the
	// event append succeeds the selection is committed regardless of what
	// happens downstream.
	//
	// Re-ranking is deliberately not part of the pipeline: callers compose
	// RecordSelection with BoardService.GetBoard to obtain the refreshed
	// order, keeping "record" and "rank" independently usable.
	RecordSelection(ctx context.Context, userID, cardID int64) (*SelectionResult, error)
}

// Verify interface compliance at compile time
var _ SelectionService = (*selectionService)(nil)

// selectionService implements SelectionService.
type selectionService struct {
	cardStore     store.CardStore
	userStore     store.UserStore
	eventStore    store.SelectionEventStore
	notifier      notify.Notifier
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// NewSelectionService creates a new SelectionService.
// notifyTimeout bounds every notification dispatch; if it is zero or
// negative a 5 second default is applied.
// If logger is nil, a default logger will be used.
func NewSelectionService(
	cardStore store.CardStore,
	userStore store.UserStore,
	eventStore store.SelectionEventStore,
	notifier notify.Notifier,
	notifyTimeout time.Duration,
	logger *slog.Logger,
) SelectionService {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if eventStore == nil {
		panic("eventStore cannot be nil")
	}
	if notifier == nil {
		panic("notifier cannot be nil")
	}

	if notifyTimeout <= 0 {
		notifyTimeout = 5 * time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &selectionService{
		cardStore:     cardStore,
		userStore:     userStore,
		eventStore:    eventStore,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger.With(slog.String("component", "selection_service")),
	}
}

// RecordSelection implements SelectionService.RecordSelection.
func (s *selectionService) RecordSelection(
	ctx context.Context,
	userID, cardID int64,
) (*SelectionResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate the card before writing anything. An unknown card must
	// leave the event log untouched.
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			log.Warn("selection references unknown card",
				slog.Int64("user_id", userID),
				slog.Int64("card_id", cardID))
			return nil, store.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to validate card: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("selection references unknown user",
				slog.Int64("user_id", userID))
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	event, err := domain.NewSelectionEvent(userID, cardID)
	if err != nil {
		return nil, err
	}

	// The single learning signal. Once this append succeeds the selection
	// is committed; nothing downstream can undo it.
	if err := s.eventStore.Append(ctx, event); err != nil {
		log.Error("failed to append selection event",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		return nil, fmt.Errorf("failed to record selection: %w", err)
	}

	result := &SelectionResult{
		Event: event,
		Card:  card,
	}

	if !user.HasGuardian() {
		log.Info("selection recorded, no guardian configured",
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		result.Outcome = OutcomeNoGuardian
		return result, nil
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	text := fmt.Sprintf("%s asks: %s", user.DisplayName, card.Label)
	if err := s.notifier.Notify(notifyCtx, *user.GuardianID, text); err != nil {
		// A caregiver-side failure must not lose the recorded selection.
		log.Warn("notification dispatch failed",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("guardian_id", *user.GuardianID))
		result.Outcome = OutcomeNotificationFailed
		return result, nil
	}

	log.Info("selection recorded and guardian notified",
		slog.Int64("user_id", userID),
		slog.Int64("card_id", cardID),
		slog.Int64("guardian_id", *user.GuardianID))
	result.Outcome = OutcomeNotificationSent
	return result, nil
}
