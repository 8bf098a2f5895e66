package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ceccimesquita/papillon/internal/domain/entities"
	"github.com/ceccimesquita/papillon/internal/usecase"
	"github.com/ceccimesquita/papillon/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const budgetPayload = `{
	"cliente": {"nome": "Maria Silva", "email": "maria@example.com", "cpfCnpj": "12345678900", "telefone": "11999990000"},
	"dataDoEvento": "2026-10-18",
	"quantidadePessoas": 10,
	"valorPorPessoa": 50,
	"dataLimite": "2026-10-01"
}`

func TestBudgetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/orcamento", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/orcamento", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad event date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/orcamento", h.Create)

		payload := `{"cliente": {"nome": "Maria", "cpfCnpj": "1"}, "dataDoEvento": "18/10/2026", "quantidadePessoas": 10, "valorPorPessoa": 50, "dataLimite": "2026-10-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orcamento", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/orcamento", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.Headcount != 10 || !in.PricePerPerson.Equal(decimal.NewFromInt(50)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Budget{
					ID:          2,
					Client:      entities.Client{ID: 7, Name: "Maria Silva"},
					Status:      entities.BudgetStatusPendente,
					Headcount:   10,
					TotalPrice:  decimal.NewFromInt(500),
					EventDate:   time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
					Deadline:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					GeneratedAt: time.Now(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/orcamento", bytes.NewBufferString(budgetPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "PENDENTE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/orcamento/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/orcamento/abc/status", bytes.NewBufferString(`{"status":"ACEITO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/orcamento/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), uint(2), entities.BudgetStatus("APROVADO")).
			Return(entities.Budget{}, usecase.ErrInvalidBudgetStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/orcamento/2/status", bytes.NewBufferString(`{"status":"APROVADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/orcamento/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), uint(99), entities.BudgetStatusAceito).
			Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/orcamento/99/status", bytes.NewBufferString(`{"status":"ACEITO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/api/orcamento/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), uint(2), entities.BudgetStatusAceito).
			Return(entities.Budget{ID: 2, Status: entities.BudgetStatusAceito, TotalPrice: decimal.NewFromInt(500)}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orcamento/2/status", bytes.NewBufferString(`{"status":"ACEITO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ACEITO" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_DownloadPdf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/api/orcamento/:id/pdf", h.DownloadPdf)

		uc.EXPECT().RenderPdf(gomock.Any(), uint(99)).Return(nil, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orcamento/99/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("streams the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/api/orcamento/:id/pdf", h.DownloadPdf)

		uc.EXPECT().RenderPdf(gomock.Any(), uint(2)).Return([]byte("%PDF-1.3"), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orcamento/2/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=orcamento-2.pdf" {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})
}

func TestMapBudgetError(t *testing.T) {
	if got := mapBudgetError(usecase.ErrInvalidBudget); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBudgetError(usecase.ErrInvalidBudgetStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBudgetError(usecase.ErrBudgetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBudgetError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBudgetError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
