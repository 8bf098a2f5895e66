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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSupplyHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.POST("/api/insumo", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/insumo", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.POST("/api/insumo", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supply{}, usecase.ErrEventNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/insumo", bytes.NewBufferString(`{"nome":"Carnes","valor":120,"eventoId":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.POST("/api/insumo", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.SupplyInput) (entities.Supply, error) {
				if in.Name != "Carnes" || in.EventID != 9 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Supply{ID: 4, Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 9}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/insumo", bytes.NewBufferString(`{"nome":"Carnes","valor":120,"eventoId":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["nome"] != "Carnes" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSupplyHandler_ListByEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.GET("/api/insumo/evento/:id", h.ListByEvent)

		uc.EXPECT().ListByEvent(gomock.Any(), uint(99)).Return(nil, usecase.ErrEventNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/insumo/evento/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.GET("/api/insumo/evento/:id", h.ListByEvent)

		uc.EXPECT().ListByEvent(gomock.Any(), uint(9)).Return([]entities.Supply{
			{ID: 4, Name: "Carnes", Value: decimal.NewFromInt(120), EventID: 9},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/insumo/evento/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["nome"] != "Carnes" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSupplyHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.DELETE("/api/insumo/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), uint(99)).Return(usecase.ErrSupplyNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/insumo/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplyUseCase(ctrl)
		h := NewSupplyHandler(uc)

		r := gin.New()
		r.DELETE("/api/insumo/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/insumo/4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapSupplyError(t *testing.T) {
	if got := mapSupplyError(usecase.ErrInvalidSupply); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSupplyError(usecase.ErrSupplyNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSupplyError(usecase.ErrEventNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSupplyError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
