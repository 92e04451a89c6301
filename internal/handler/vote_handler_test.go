package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"fallapp-api/internal/dto"
	"fallapp-api/internal/response"
)

// MockVoteService is a mock implementation of VoteService
type MockVoteService struct {
	CastVoteFunc        func(ctx context.Context, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error)
	GetVotesByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error)
	GetVotesByFallaFunc func(ctx context.Context, fallaID uuid.UUID) ([]dto.VoteResponse, error)
	RemoveVoteFunc      func(ctx context.Context, userID, voteID uuid.UUID) error
}

func (m *MockVoteService) CastVote(ctx context.Context, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
	if m.CastVoteFunc != nil {
		return m.CastVoteFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockVoteService) GetVotesByUser(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error) {
	if m.GetVotesByUserFunc != nil {
		return m.GetVotesByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockVoteService) GetVotesByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.VoteResponse, error) {
	if m.GetVotesByFallaFunc != nil {
		return m.GetVotesByFallaFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockVoteService) RemoveVote(ctx context.Context, userID, voteID uuid.UUID) error {
	if m.RemoveVoteFunc != nil {
		return m.RemoveVoteFunc(ctx, userID, voteID)
	}
	return nil
}

func TestVoteHandler_CastVote(t *testing.T) {
	userID := uuid.New()
	fallaID := uuid.New()
	voteID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockVoteService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "vote recorded",
			requestBody: dto.CastVoteRequest{
				FallaID: fallaID,
				Kind:    "favorito",
			},
			mockService: func(m *MockVoteService) {
				m.CastVoteFunc = func(ctx context.Context, uid uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
					return &dto.VoteResponse{
						VoteID:  voteID,
						UserID:  uid,
						FallaID: req.FallaID,
						Kind:    req.Kind,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.SuccessResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				data, ok := resp.Data.(map[string]interface{})
				if !ok {
					t.Fatalf("expected object data, got %T", resp.Data)
				}
				if data["tipoVoto"] != "favorito" {
					t.Errorf("expected tipoVoto 'favorito', got %v", data["tipoVoto"])
				}
			},
		},
		{
			name:           "invalid body",
			requestBody:    "not json",
			mockService:    func(m *MockVoteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing kind",
			requestBody: map[string]interface{}{
				"fallaId": fallaID.String(),
			},
			mockService:    func(m *MockVoteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate vote",
			requestBody: dto.CastVoteRequest{
				FallaID: fallaID,
				Kind:    "favorito",
			},
			mockService: func(m *MockVoteService) {
				m.CastVoteFunc = func(ctx context.Context, uid uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
					return nil, response.NewConflictError("Vote already cast for this falla and kind", "")
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown kind",
			requestBody: dto.CastVoteRequest{
				FallaID: fallaID,
				Kind:    "mejor",
			},
			mockService: func(m *MockVoteService) {
				m.CastVoteFunc = func(ctx context.Context, uid uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
					return nil, response.NewValidationError("Invalid vote kind", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockVoteService{}
			tt.mockService(mockService)
			handler := NewVoteHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/votos", authAs(userID), handler.CastVote)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/votos", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("CastVote() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestVoteHandler_RemoveVote(t *testing.T) {
	userID := uuid.New()
	voteID := uuid.New()

	tests := []struct {
		name           string
		voteID         string
		mockService    func(*MockVoteService)
		expectedStatus int
	}{
		{
			name:   "vote removed",
			voteID: voteID.String(),
			mockService: func(m *MockVoteService) {
				m.RemoveVoteFunc = func(ctx context.Context, uid, vid uuid.UUID) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid vote id",
			voteID:         "not-a-uuid",
			mockService:    func(m *MockVoteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not the voter",
			voteID: voteID.String(),
			mockService: func(m *MockVoteService) {
				m.RemoveVoteFunc = func(ctx context.Context, uid, vid uuid.UUID) error {
					return response.NewForbiddenError("Access denied", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockVoteService{}
			tt.mockService(mockService)
			handler := NewVoteHandler(mockService)

			router := setupTestRouter()
			router.DELETE("/api/votos/:voteId", authAs(userID), handler.RemoveVote)

			req := httptest.NewRequest(http.MethodDelete, "/api/votos/"+tt.voteID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("RemoveVote() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}
