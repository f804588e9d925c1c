package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"portfoliotracker/api"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies opens the db lazily; nothing here touches the
// network until the first query.
func InitializeDependencies(conf *config.Config) (*api.ApiHandler, error) {
	settings, err := conf.StrategySettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load strategy settings: %w", err)
	}

	dbConn, err := sql.Open("postgres", conf.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	legRepository := repository.NewBreakerTransactionLegRepository(
		repository.NewTransactionLegRepository(dbConn),
		conf.Breaker,
	)
	priceBarRepository := repository.NewBreakerPriceBarRepository(
		repository.NewPriceBarRepository(dbConn),
		conf.Breaker,
	)

	strategyService := service.NewStrategyService(
		dbConn,
		legRepository,
		priceBarRepository,
		settings,
	)
	ingestService := service.NewIngestService(
		dbConn,
		legRepository,
		priceBarRepository,
		settings,
	)

	apiHandler := &api.ApiHandler{
		Db:              dbConn,
		StrategyService: strategyService,
		IngestService:   ingestService,
	}

	return apiHandler, nil
}
