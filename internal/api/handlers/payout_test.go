package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bondwise/bond-advisor-backend/internal/api/handlers"
	"github.com/bondwise/bond-advisor-backend/internal/api/request"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

func TestComputeSchedule(t *testing.T) {
	t.Run("projects a quarterly schedule", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewPayoutHandler(env.payout)

		req := postJSON(t, "/api/payout", request.PayoutRequest{
			InvestmentAmount: 100000,
			AnnualCouponRate: 8.0,
			HorizonYears:     1,
			PayoutFrequency:  "quarterly",
			StartDate:        "2025-01-01",
		})
		rr := httptest.NewRecorder()
		handler.ComputeSchedule(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}

		var summary model.PayoutSummary
		decodeJSON(t, rr, &summary)
		if summary.TotalPayments != 4 {
			t.Errorf("Expected 4 payments, got %d", summary.TotalPayments)
		}
		if summary.AmountPerPayment != 2000.00 {
			t.Errorf("Expected 2000.00 per payment, got %v", summary.AmountPerPayment)
		}
		if summary.TotalIncome != 8000.00 {
			t.Errorf("Expected total income 8000.00, got %v", summary.TotalIncome)
		}
		if len(summary.Schedule) != 4 {
			t.Errorf("Expected 4 schedule entries, got %d", len(summary.Schedule))
		}
	})

	t.Run("returns 400 with detail on an unknown frequency", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewPayoutHandler(env.payout)

		req := postJSON(t, "/api/payout", request.PayoutRequest{
			InvestmentAmount: 100000,
			AnnualCouponRate: 8.0,
			HorizonYears:     1,
			PayoutFrequency:  "fortnightly",
		})
		rr := httptest.NewRecorder()
		handler.ComputeSchedule(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rr.Code)
		}

		var resp map[string]string
		decodeJSON(t, rr, &resp)
		if resp["error"] != "validation failed" {
			t.Errorf("Expected validation failed, got %q", resp["error"])
		}
		if !strings.Contains(resp["detail"], "fortnightly") {
			t.Errorf("Expected the detail to name the offending value, got %q", resp["detail"])
		}
	})

	t.Run("returns 400 on a non-positive amount", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewPayoutHandler(env.payout)

		req := postJSON(t, "/api/payout", request.PayoutRequest{
			InvestmentAmount: 0,
			AnnualCouponRate: 8.0,
			HorizonYears:     1,
			PayoutFrequency:  "quarterly",
		})
		rr := httptest.NewRecorder()
		handler.ComputeSchedule(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})

	t.Run("returns 400 on a malformed body", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewPayoutHandler(env.payout)

		req := httptest.NewRequest(http.MethodPost, "/api/payout", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		handler.ComputeSchedule(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}
