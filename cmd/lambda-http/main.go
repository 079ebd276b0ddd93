package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"resume-intake/internal/bootstrap"
	"resume-intake/internal/shared/config"
	"resume-intake/internal/shared/telemetry"
	"resume-intake/internal/uploads"
)

type intakeFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

func newHandler(h *uploads.Handler) intakeFunc {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		resp := h.Handle(ctx, toEvent(req))
		telemetry.Sync()
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}, nil
	}
}

func toEvent(req events.APIGatewayV2HTTPRequest) uploads.Event {
	return uploads.Event{
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
		Headers:         req.Headers,
		RequestID:       req.RequestContext.RequestID,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	lambda.Start(newHandler(app.Handler))
}
