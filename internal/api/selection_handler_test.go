package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/commboard-api/internal/api"
	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/service"
	"github.com/phrazzld/commboard-api/internal/store"
)

func strPtr(s string) *string { return &s }

func selectionResult(t *testing.T, userID, cardID int64, outcome service.NotificationOutcome) *service.SelectionResult {
	t.Helper()
	event, err := domain.NewSelectionEvent(userID, cardID)
	require.NoError(t, err)
	return &service.SelectionResult{
		Event:   event,
		Card:    boardCard(t, cardID, "eat", "I want to eat", 80),
		Outcome: outcome,
	}
}

func TestRecordSelection(t *testing.T) {
	t.Run("records and returns refreshed board", func(t *testing.T) {
		selectionSvc := new(MockSelectionService)
		boardSvc := new(MockBoardService)

		selectionSvc.On("RecordSelection", mock.Anything, int64(42), int64(3)).
			Return(selectionResult(t, 42, 3, service.OutcomeNotificationSent), nil)
		boardSvc.On("GetBoard", mock.Anything, int64(42)).
			Return([]*domain.Card{
				boardCard(t, 1, "drink", "I want to drink", 100),
				boardCard(t, 3, "eat", "I want to eat", 80),
			}, nil)

		handler := api.NewSelectionHandler(selectionSvc, boardSvc, nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":3}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.SelectionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, service.OutcomeNotificationSent, resp.Outcome)
		assert.Equal(t, int64(3), resp.Card.ID)
		require.Len(t, resp.Board, 2)
		assert.Equal(t, "drink", resp.Board[0].Slug)
	})

	t.Run("no guardian outcome passes through", func(t *testing.T) {
		selectionSvc := new(MockSelectionService)
		boardSvc := new(MockBoardService)

		selectionSvc.On("RecordSelection", mock.Anything, int64(42), int64(3)).
			Return(selectionResult(t, 42, 3, service.OutcomeNoGuardian), nil)
		boardSvc.On("GetBoard", mock.Anything, int64(42)).
			Return([]*domain.Card{}, nil)

		handler := api.NewSelectionHandler(selectionSvc, boardSvc, nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":3}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.SelectionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, service.OutcomeNoGuardian, resp.Outcome)
	})

	t.Run("unknown card yields 404", func(t *testing.T) {
		selectionSvc := new(MockSelectionService)
		boardSvc := new(MockBoardService)

		selectionSvc.On("RecordSelection", mock.Anything, int64(42), int64(99)).
			Return(nil, store.ErrCardNotFound)

		handler := api.NewSelectionHandler(selectionSvc, boardSvc, nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":99}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		boardSvc.AssertNotCalled(t, "GetBoard", mock.Anything, mock.Anything)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		handler := api.NewSelectionHandler(new(MockSelectionService), new(MockBoardService), nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{bad json`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-positive card ID yields 400", func(t *testing.T) {
		handler := api.NewSelectionHandler(new(MockSelectionService), new(MockBoardService), nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":0}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("persistence failure yields 500", func(t *testing.T) {
		selectionSvc := new(MockSelectionService)

		selectionSvc.On("RecordSelection", mock.Anything, int64(42), int64(3)).
			Return(nil, store.ErrUnavailable)

		handler := api.NewSelectionHandler(selectionSvc, new(MockBoardService), nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":3}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("board refresh failure still reports recorded selection", func(t *testing.T) {
		selectionSvc := new(MockSelectionService)
		boardSvc := new(MockBoardService)

		selectionSvc.On("RecordSelection", mock.Anything, int64(42), int64(3)).
			Return(selectionResult(t, 42, 3, service.OutcomeNotificationSent), nil)
		boardSvc.On("GetBoard", mock.Anything, int64(42)).
			Return(nil, store.ErrUnavailable)

		handler := api.NewSelectionHandler(selectionSvc, boardSvc, nil)
		req := authedRequest(t, http.MethodPost, "/api/selections", strPtr(`{"card_id":3}`), 42, "Alex")
		rr := httptest.NewRecorder()

		handler.RecordSelection(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.SelectionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, service.OutcomeNotificationSent, resp.Outcome)
		assert.Empty(t, resp.Board)
	})
}
