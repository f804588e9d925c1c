package main

import (
	"context"
	"log"
	"os"

	"portfoliotracker/api"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/config"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

type lambdaHandler struct {
	apiHandler *api.ApiHandler
	ginLambda  *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	zap.S().Debugw("lambda request",
		"path", req.Path,
		"method", req.HTTPMethod,
		"requestID", req.RequestContext.RequestID,
	)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	conf, err := config.Load(os.Getenv("TRACKER_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	apiHandler, err := cmd.InitializeDependencies(conf)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	handler := lambdaHandler{
		apiHandler: apiHandler,
		ginLambda:  ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
