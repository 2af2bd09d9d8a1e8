//go:build lambda

package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"memoria-parser/internal/app"
	"memoria-parser/internal/catalog"
	"memoria-parser/internal/config"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// table is loaded once at cold start; a catalog that does not parse keeps
// the function from starting.
var table *catalog.Catalog

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	if m := event.RequestContext.HTTP.Method; m != "" && m != http.MethodGet {
		return errResp(http.StatusMethodNotAllowed, "only GET is supported")
	}

	var body any
	switch event.RawPath {
	case "/orders":
		body = table.Orders()
	case "", "/", "/memoria":
		f, err := catalog.NewFilter(event.QueryStringParameters)
		if err != nil {
			return errResp(http.StatusBadRequest, err.Error())
		}
		body = table.Filter(f)
	default:
		return errResp(http.StatusNotFound, "unknown path "+event.RawPath)
	}

	respJSON, err := json.Marshal(body)
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	table, err = catalog.LoadFiles(cfg.Catalog.MemoriaPath, cfg.Catalog.OrderPath, catalog.WithLogger(logger))
	if err != nil {
		logger.Fatal("catalog failed to load", zap.Error(err))
	}
	lambda.Start(handler)
}
