package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/service"
	mock_service "portfoliotracker/internal/service/mocks"
	"portfoliotracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApi(t *testing.T) (*gin.Engine, *mock_service.MockStrategyService, *mock_service.MockIngestService) {
	ctrl := gomock.NewController(t)
	strategyService := mock_service.NewMockStrategyService(ctrl)
	ingestService := mock_service.NewMockIngestService(ctrl)

	handler := ApiHandler{
		StrategyService: strategyService,
		IngestService:   ingestService,
	}
	return handler.InitializeRouterEngine(), strategyService, ingestService
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPerformance(t *testing.T) {
	t.Run("accepts the daily alias", func(t *testing.T) {
		router, strategyService, _ := newTestApi(t)

		strategyService.EXPECT().
			GetValuationSeries(gomock.Any(), domain.StrategyIntraday).
			Return(&domain.ValuationSeries{
				Strategy: domain.StrategyIntraday,
				Points: []domain.ValuationPoint{
					{Date: util.NewDate(2024, 1, 2), TotalValue: decimal.NewFromInt(1000), CashValue: decimal.NewFromInt(1000)},
					{Date: util.NewDate(2024, 1, 3), TotalValue: decimal.RequireFromString("1005.5"), CashValue: decimal.RequireFromString("1005.5")},
				},
			}, nil)

		w := doRequest(router, http.MethodGet, "/api/daily/performance", nil)
		require.Equal(t, 200, w.Code)

		out := performanceResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out.Points, 2)
		require.Equal(t, "2024-01-03", out.Latest.Date)
		require.Equal(t, 1005.5, out.Latest.TotalValue)
		require.False(t, out.LedgerHealth.Degraded)
		require.Empty(t, out.LedgerHealth.Violations)
	})

	t.Run("unknown strategy is not found", func(t *testing.T) {
		router, _, _ := newTestApi(t)

		w := doRequest(router, http.MethodGet, "/api/monthly/performance", nil)
		require.Equal(t, 404, w.Code)
	})

	t.Run("upstream failure is retryable", func(t *testing.T) {
		router, strategyService, _ := newTestApi(t)

		strategyService.EXPECT().
			GetValuationSeries(gomock.Any(), domain.StrategyHold).
			Return(nil, fmt.Errorf("failed to list hold legs: %w", domain.ErrLogUnavailable))

		w := doRequest(router, http.MethodGet, "/api/hold/performance", nil)
		require.Equal(t, 503, w.Code)

		out := map[string]any{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, true, out["retryable"])
	})

	t.Run("other failures are internal", func(t *testing.T) {
		router, strategyService, _ := newTestApi(t)

		strategyService.EXPECT().
			GetValuationSeries(gomock.Any(), domain.StrategyHold).
			Return(nil, errors.New("boom"))

		w := doRequest(router, http.MethodGet, "/api/hold/performance", nil)
		require.Equal(t, 500, w.Code)
	})
}

func TestStatus(t *testing.T) {
	router, strategyService, _ := newTestApi(t)

	legID := uuid.New()
	priceDate := util.NewDate(2024, 1, 9)
	strategyService.EXPECT().
		GetCurrentStatus(gomock.Any(), domain.StrategyHold).
		Return(&domain.CurrentStatus{
			Strategy:     domain.StrategyHold,
			AsOf:         util.NewDate(2024, 1, 10),
			CashPosition: &domain.PositionState{Symbol: "USDH", IsCashLeg: true, NetShares: decimal.NewFromInt(1000)},
			CashValue:    decimal.NewFromInt(1000),
			EquityValue:  decimal.NewFromInt(120),
			TotalValue:   decimal.NewFromInt(1120),
			Positions: []domain.HeldPosition{
				{
					Symbol:       "AAA",
					NetShares:    decimal.NewFromInt(10),
					AvgCost:      decimal.NewFromInt(10),
					Price:        decimal.NewFromInt(12),
					PriceDate:    &priceDate,
					CurrentValue: decimal.NewFromInt(120),
				},
			},
			LedgerHealth: domain.LedgerHealth{
				Degraded: true,
				Violations: []domain.LedgerIntegrityError{
					{Strategy: domain.StrategyHold, Symbol: "AAA", Date: util.NewDate(2024, 1, 3), LegID: legID, Held: decimal.NewFromInt(10), Requested: decimal.NewFromInt(20)},
				},
			},
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/hold/status", nil)
	require.Equal(t, 200, w.Code)

	out := statusResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, "USDH", out.CashPosition.Symbol)
	require.Equal(t, 1120.0, out.TotalValue)
	require.Len(t, out.Positions, 1)
	require.Equal(t, "2024-01-09", *out.Positions[0].PriceDate)
	require.True(t, out.LedgerHealth.Degraded)
	require.Equal(t, legID.String(), out.LedgerHealth.Violations[0].LegID)
	require.Nil(t, out.LastTradeDate)
}

func TestExecution(t *testing.T) {
	t.Run("weekly window", func(t *testing.T) {
		router, strategyService, _ := newTestApi(t)

		friday := util.NewDate(2024, 1, 5)
		strategyService.EXPECT().
			GetExecutionHistory(gomock.Any(), domain.StrategyWeekly, friday).
			Return(&domain.ExecutionHistory{
				Strategy:    domain.StrategyWeekly,
				WindowStart: util.NewDate(2024, 1, 1),
				WindowEnd:   util.NewDate(2024, 1, 7),
				Entries: []domain.ExecutionEntry{
					{LegID: uuid.New(), Date: friday, Symbol: "AAA", SharesSold: decimal.NewFromInt(10), SellValue: decimal.NewFromInt(130)},
				},
				TotalSellValue: decimal.NewFromInt(130),
				NetFlow:        decimal.NewFromInt(130),
			}, nil)

		w := doRequest(router, http.MethodGet, "/api/weekly/execution/2024-01-05", nil)
		require.Equal(t, 200, w.Code)

		out := executionResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, "2024-01-01", out.WindowStart)
		require.Equal(t, "2024-01-07", out.WindowEnd)
		require.Len(t, out.Entries, 1)
		require.Nil(t, out.Entries[0].SellPrice)
	})

	t.Run("bad date", func(t *testing.T) {
		router, _, _ := newTestApi(t)

		w := doRequest(router, http.MethodGet, "/api/weekly/execution/01-05-2024", nil)
		require.Equal(t, 400, w.Code)
	})
}

func TestAssetPnL(t *testing.T) {
	router, strategyService, _ := newTestApi(t)

	strategyService.EXPECT().
		GetAssetPnLSeries(gomock.Any(), domain.StrategyIntraday).
		Return(map[string][]domain.AssetPnLPoint{
			"BBB": {{Date: util.NewDate(2024, 1, 2), RealizedPnL: decimal.NewFromInt(-2), CumulativePnL: decimal.NewFromInt(-2)}},
			"AAA": {{Date: util.NewDate(2024, 1, 2), RealizedPnL: decimal.NewFromInt(5), CumulativePnL: decimal.NewFromInt(5)}},
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/intraday/pnl", nil)
	require.Equal(t, 200, w.Code)

	out := []assetPnLSeriesResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	symbols := []string{}
	for _, s := range out {
		symbols = append(symbols, s.Symbol)
	}
	require.Equal(t, "", cmp.Diff([]string{"AAA", "BBB"}, symbols))
}

func TestOverview(t *testing.T) {
	router, strategyService, _ := newTestApi(t)

	strategyService.EXPECT().
		GetOverview(gomock.Any()).
		Return([]service.StrategyOverview{
			{
				Strategy: domain.StrategyHold,
				Latest:   &domain.ValuationPoint{Date: util.NewDate(2024, 1, 2), TotalValue: decimal.NewFromInt(1100)},
				Summary: domain.Summary{
					Strategy:    domain.StrategyHold,
					TotalNetPnL: decimal.NewFromInt(100),
					Performance: &domain.Performance{Periods: 1, TotalReturn: 0.1},
				},
			},
			{
				Strategy: domain.StrategyWeekly,
				Summary:  domain.Summary{Strategy: domain.StrategyWeekly},
			},
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/overview", nil)
	require.Equal(t, 200, w.Code)

	out := []overviewResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	require.Equal(t, 100.0, out[0].Summary.TotalNetPnL)
	require.Equal(t, 0.1, out[0].Summary.Performance.TotalReturn)
	require.Nil(t, out[1].Latest)
	require.Nil(t, out[1].Summary.Performance)
}

func TestUpdatePrices(t *testing.T) {
	t.Run("ingests", func(t *testing.T) {
		router, _, ingestService := newTestApi(t)

		ingestService.EXPECT().
			IngestPrices(gomock.Any(), []string{"AAA", "BBB"}, util.NewDate(2024, 1, 1)).
			Return(&service.IngestResult{
				Bars:    10,
				Symbols: []string{"AAA"},
				Failed:  map[string]error{"BBB": errors.New("no data")},
			}, nil)

		w := doRequest(router, http.MethodPost, "/api/prices/ingest", []byte(`{"symbols":["AAA","BBB"],"start":"2024-01-01"}`))
		require.Equal(t, 200, w.Code)

		out := updatePricesResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, 10, out.Bars)
		require.Equal(t, "no data", out.Failed["BBB"])
	})

	t.Run("bad start", func(t *testing.T) {
		router, _, _ := newTestApi(t)

		w := doRequest(router, http.MethodPost, "/api/prices/ingest", []byte(`{"symbols":["AAA"],"start":"yesterday"}`))
		require.Equal(t, 400, w.Code)
	})
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestApi(t)

	w := doRequest(router, http.MethodGet, "/healthz", nil)
	require.Equal(t, 200, w.Code)
}
