package cmd

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quizgen/internal/config"
)

// runLambda blocks serving API Gateway proxy events.
func runLambda(handler http.Handler) {
	config.Logger.Info("Starting Lambda handler")
	adapter := httpadapter.New(handler)
	lambda.Start(adapter.ProxyWithContext)
}
