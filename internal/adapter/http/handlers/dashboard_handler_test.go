package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotedesk/internal/adapter/http/handlers/mocks"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRecordUseCase(ctrl)
	h := NewDashboardHandler(uc)

	rows := []usecase.DashboardRow{
		{ID: "b", Date: time.Now().UTC(), Client: "Beta", Status: entities.RecordStatusQuoted, Amount: "Rp 4.440.000"},
		{ID: "a", Date: time.Now().UTC().Add(-time.Hour), Client: "Acme", Status: entities.RecordStatusNew, Amount: "-"},
	}
	uc.EXPECT().Dashboard(gomock.Any()).Return(rows, nil)

	r := gin.New()
	r.GET("/v1/dashboard", h.GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Rows  []map[string]any `json:"rows"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if res.Count != 2 || res.Rows[0]["id"] != "b" || res.Rows[1]["amount"] != "-" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestDashboardHandler_GetCalculatorPrefill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecordUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().CalculatorPrefill(gomock.Any(), "missing").Return(usecase.CalculatorForm{}, usecase.ErrRecordNotFound)

		r := gin.New()
		r.GET("/v1/records/:id/calculator", h.GetCalculatorPrefill)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/missing/calculator", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecordUseCase(ctrl)
		h := NewDashboardHandler(uc)

		form := usecase.CalculatorForm{
			TargetID:      "req-1",
			ClientName:    "Acme",
			Participants:  "20",
			Sessions:      "1",
			CostLines:     []usecase.CostLineForm{{Component: "Trainer Fee", Qty: "1", UnitCost: "0"}},
			MarginPercent: "55",
			Tax1Label:     "PPN",
			Tax1Percent:   "11",
		}
		uc.EXPECT().CalculatorPrefill(gomock.Any(), "req-1").Return(form, nil)

		r := gin.New()
		r.GET("/v1/records/:id/calculator", h.GetCalculatorPrefill)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/req-1/calculator", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["target_id"] != "req-1" || res["margin_percent"] != "55" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestDashboardHandler_DeleteRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecordUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().DeleteRecord(gomock.Any(), "rec-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/records/:id", h.DeleteRecord)

		req := httptest.NewRequest(http.MethodDelete, "/v1/records/rec-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecordUseCase(ctrl)
		h := NewDashboardHandler(uc)

		uc.EXPECT().DeleteRecord(gomock.Any(), "rec-1").Return(errors.New("dynamodb unavailable"))

		r := gin.New()
		r.DELETE("/v1/records/:id", h.DeleteRecord)

		req := httptest.NewRequest(http.MethodDelete, "/v1/records/rec-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
