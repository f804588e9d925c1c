package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIngestHandler(ctrl *gomock.Controller, fetch PriceFetcher) (ingestServiceHandler, *mock_repository.MockTransactionLegRepository, *mock_repository.MockPriceBarRepository) {
	legRepository := mock_repository.NewMockTransactionLegRepository(ctrl)
	priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

	settings := map[domain.Strategy]domain.StrategySettings{}
	for _, strategy := range domain.AllStrategies() {
		settings[strategy] = domain.DefaultStrategySettings(strategy)
	}

	return ingestServiceHandler{
		TransactionLegRepository: legRepository,
		PriceBarRepository:       priceBarRepository,
		Settings:                 settings,
		Fetch:                    fetch,
		MaxConcurrency:           2,
		Now: func() time.Time {
			return util.NewDate(2024, 1, 10)
		},
	}, legRepository, priceBarRepository
}

func Test_ingestServiceHandler_IngestPrices(t *testing.T) {
	start := util.NewDate(2024, 1, 1)

	t.Run("stores fetched bars and reports failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetchErr := errors.New("no data")

		mu := sync.Mutex{}
		requested := map[string]bool{}
		windows := map[string][2]time.Time{}
		handler, _, priceBarRepository := newTestIngestHandler(ctrl, func(symbol string, s, e time.Time) ([]domain.PriceBar, error) {
			mu.Lock()
			requested[symbol] = true
			windows[symbol] = [2]time.Time{s, e}
			mu.Unlock()

			if symbol == "ZZZ" {
				return nil, fetchErr
			}
			return []domain.PriceBar{
				{Symbol: symbol, Date: util.NewDate(2024, 1, 2), Open: decimal.NewFromInt(10), Close: decimal.NewFromInt(11)},
			}, nil
		})

		priceBarRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ any, bars []domain.PriceBar) error {
				symbols := []string{}
				for _, bar := range bars {
					symbols = append(symbols, bar.Symbol)
				}
				require.Equal(t, "", cmp.Diff([]string{"AAA", "BBB"}, symbols))
				return nil
			})

		result, err := handler.IngestPrices(context.Background(), []string{"bbb", "AAA", "zzz", "aaa", " "}, start)
		require.NoError(t, err)

		require.Equal(t, map[string]bool{"AAA": true, "BBB": true, "ZZZ": true}, requested)
		require.Equal(t, [2]time.Time{start, util.NewDate(2024, 1, 10)}, windows["AAA"])
		require.Equal(t, []string{"AAA", "BBB"}, result.Symbols)
		require.Equal(t, 2, result.Bars)
		require.Len(t, result.Failed, 1)
		require.ErrorIs(t, result.Failed["ZZZ"], fetchErr)
	})

	t.Run("every symbol failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _ := newTestIngestHandler(ctrl, func(symbol string, s, e time.Time) ([]domain.PriceBar, error) {
			return nil, errors.New("rate limited")
		})

		_, err := handler.IngestPrices(context.Background(), []string{"AAA"}, start)
		require.ErrorContains(t, err, "rate limited")
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, priceBarRepository := newTestIngestHandler(ctrl, func(symbol string, s, e time.Time) ([]domain.PriceBar, error) {
			return []domain.PriceBar{}, nil
		})
		priceBarRepository.EXPECT().
			Add(nil, gomock.Any()).
			Return(domain.ErrPriceReferenceUnavailable)

		_, err := handler.IngestPrices(context.Background(), []string{"AAA"}, start)
		require.ErrorIs(t, err, domain.ErrPriceReferenceUnavailable)
	})

	t.Run("start must precede today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _ := newTestIngestHandler(ctrl, nil)

		_, err := handler.IngestPrices(context.Background(), []string{"AAA"}, util.NewDate(2024, 2, 1))
		require.Error(t, err)
	})
}

func Test_ingestServiceHandler_ImportLegs(t *testing.T) {
	t.Run("stamps the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, legRepository, _ := newTestIngestHandler(ctrl, nil)

		legs := []domain.TransactionLeg{
			{Symbol: "USDH", Date: util.NewDate(2024, 1, 2), SharesBought: decimal.NewFromInt(1000)},
			{Symbol: "AAA", Date: util.NewDate(2024, 1, 2), SharesBought: decimal.NewFromInt(5)},
		}
		legRepository.EXPECT().
			AddMany(nil, gomock.Any()).
			DoAndReturn(func(_ any, in []domain.TransactionLeg) ([]domain.TransactionLeg, error) {
				for _, leg := range in {
					require.Equal(t, domain.StrategyHold, leg.Strategy)
				}
				return in, nil
			})

		n, err := handler.ImportLegs(context.Background(), domain.StrategyHold, legs)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("rejects legs from another strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _ := newTestIngestHandler(ctrl, nil)

		_, err := handler.ImportLegs(context.Background(), domain.StrategyHold, []domain.TransactionLeg{
			{Strategy: domain.StrategyWeekly, Symbol: "AAA"},
		})
		require.Error(t, err)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _ := newTestIngestHandler(ctrl, nil)

		_, err := handler.ImportLegs(context.Background(), domain.Strategy("monthly"), nil)
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func Test_ingestServiceHandler_ImportPriceBars(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, _, priceBarRepository := newTestIngestHandler(ctrl, nil)

	err := handler.ImportPriceBars(context.Background(), []domain.PriceBar{
		{Symbol: "AAA", Date: util.NewDate(2024, 1, 2), Open: decimal.NewFromInt(-1)},
	})
	require.Error(t, err)

	bars := []domain.PriceBar{
		{Symbol: "AAA", Date: util.NewDate(2024, 1, 2), Open: decimal.NewFromInt(1), Close: decimal.NewFromInt(2)},
	}
	priceBarRepository.EXPECT().Add(nil, bars).Return(nil)
	require.NoError(t, handler.ImportPriceBars(context.Background(), bars))
}
