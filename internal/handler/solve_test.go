package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/encounter"
)

func TestHandleSolve(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockEncounterService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Missing User ID",
			reqBody: SolveRequest{
				ProblemID: "two-sum",
				Rating:    800,
			},
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name: "Duplicate Solve",
			reqBody: SolveRequest{
				UserID:    "user-1",
				ProblemID: "two-sum",
				Rating:    800,
			},
			setupMocks: func(ms *MockEncounterService) {
				ms.On("HandleSolve", mock.Anything, "user-1", "two-sum", 800, mock.Anything).
					Return(nil, domain.ErrAlreadySolved)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadySolvedError,
		},
		{
			name: "Service Error",
			reqBody: SolveRequest{
				UserID:    "user-1",
				ProblemID: "two-sum",
				Rating:    800,
			},
			setupMocks: func(ms *MockEncounterService) {
				ms.On("HandleSolve", mock.Anything, "user-1", "two-sum", 800, mock.Anything).
					Return(nil, errors.New("db connection lost"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
		{
			name: "Success",
			reqBody: SolveRequest{
				UserID:    "user-1",
				ProblemID: "two-sum",
				Rating:    1200,
				Tags:      []string{"graphs"},
			},
			setupMocks: func(ms *MockEncounterService) {
				ms.On("HandleSolve", mock.Anything, "user-1", "two-sum", 1200, []string{"graphs"}).
					Return(&encounter.SolveResult{
						ProblemID:  "two-sum",
						GoldEarned: 1200,
						Tier:       3,
						Pokemon:    &domain.QueuedPokemon{ID: 25, Name: "pikachu"},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"gold_earned":1200`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockEncounterService)
			handler := NewSolveHandler(mockService)

			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/solve", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleSolve(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}
