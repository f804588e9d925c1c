package main

import (
	"log"
	"os"

	"portfoliotracker/cmd"
	"portfoliotracker/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.Load(os.Getenv("TRACKER_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	apiHandler, err := cmd.InitializeDependencies(conf)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	zap.S().Infow("starting api", "port", conf.Port, "env", conf.Env, "commitHash", os.Getenv("commit_hash"))
	err = apiHandler.StartApi(conf.Port)
	if err != nil {
		log.Fatal(err)
	}
}
