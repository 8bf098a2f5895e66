package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"
	"github.com/ceccimesquita/papillon/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/cliente", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/api/cliente", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate tax id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/cliente", h.Register)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/api/cliente", bytes.NewBufferString(`{"nome":"Maria Silva","cpfCnpj":"12345678900"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/cliente", h.Register)

		uc.EXPECT().Register(gomock.Any(), usecase.ClientInput{Name: "Maria Silva", CpfCnpj: "12345678900"}).
			Return(entities.Client{ID: 7, Name: "Maria Silva", CpfCnpj: "12345678900"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cliente", bytes.NewBufferString(`{"nome":"Maria Silva","cpfCnpj":"12345678900"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["nome"] != "Maria Silva" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_GetDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/api/cliente/:id", h.GetDetails)

		uc.EXPECT().GetDetails(gomock.Any(), uint(99)).Return(entities.Client{}, nil, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/cliente/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns client with events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/api/cliente/:id", h.GetDetails)

		uc.EXPECT().GetDetails(gomock.Any(), uint(7)).Return(
			entities.Client{ID: 7, Name: "Maria Silva"},
			[]entities.Event{{ID: 9, Name: "Casamento", ClientID: 7}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/api/cliente/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		events, ok := body["eventos"].([]any)
		if !ok || len(events) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapClientError(t *testing.T) {
	if got := mapClientError(usecase.ErrInvalidClient); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClientError(usecase.ErrClientAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapClientError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapClientError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
