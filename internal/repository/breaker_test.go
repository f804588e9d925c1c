package repository_test

import (
	"errors"
	"testing"
	"time"

	"portfoliotracker/internal/config"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	mock_repository "portfoliotracker/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBreakerTransactionLegRepository(t *testing.T) {
	conf := config.BreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  2,
	}

	t.Run("opens after repeated failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		legRepository := mock_repository.NewMockTransactionLegRepository(ctrl)
		repo := repository.NewBreakerTransactionLegRepository(legRepository, conf)

		dbErr := errors.New("connection refused")
		legRepository.EXPECT().
			List(nil, repository.TransactionLegListFilter{}).
			Return(nil, dbErr).
			Times(2)

		for i := 0; i < 2; i++ {
			_, err := repo.List(nil, repository.TransactionLegListFilter{})
			require.ErrorIs(t, err, dbErr)
		}

		// the store is not called again while open
		_, err := repo.List(nil, repository.TransactionLegListFilter{})
		require.ErrorIs(t, err, domain.ErrLogUnavailable)
		require.True(t, domain.IsRetryable(err))
	})

	t.Run("passes results through when closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		legRepository := mock_repository.NewMockTransactionLegRepository(ctrl)
		repo := repository.NewBreakerTransactionLegRepository(legRepository, conf)

		legs := []domain.TransactionLeg{{Symbol: "AAA"}}
		legRepository.EXPECT().
			List(nil, repository.TransactionLegListFilter{}).
			Return(legs, nil)

		out, err := repo.List(nil, repository.TransactionLegListFilter{})
		require.NoError(t, err)
		require.Equal(t, legs, out)
	})
}

func TestBreakerPriceBarRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	barRepository := mock_repository.NewMockPriceBarRepository(ctrl)
	repo := repository.NewBreakerPriceBarRepository(barRepository, config.BreakerConfig{})

	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	barRepository.EXPECT().
		Get(nil, "AAA", date).
		Return(nil, nil)

	bar, err := repo.Get(nil, "AAA", date)
	require.NoError(t, err)
	require.Nil(t, bar)
}
