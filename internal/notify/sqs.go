package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SendMessageAPI is the subset of the SQS client used by SQSPublisher.
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends JSON-encoded notifications to an SQS queue.
type SQSPublisher struct {
	client   SendMessageAPI
	queueURL string
}

// NewSQSPublisher constructs an SQS-backed publisher from a shared AWS config.
func NewSQSPublisher(cfg aws.Config, queueURL string) (*SQSPublisher, error) {
	return NewSQSPublisherWithClient(sqs.NewFromConfig(cfg), queueURL)
}

// NewSQSPublisherWithClient constructs a publisher around an existing client.
func NewSQSPublisherWithClient(client SendMessageAPI, queueURL string) (*SQSPublisher, error) {
	if strings.TrimSpace(queueURL) == "" {
		return nil, fmt.Errorf("sqs queue url is required")
	}
	return &SQSPublisher{client: client, queueURL: queueURL}, nil
}

// Publish delivers msg to the configured queue.
func (p *SQSPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return "", fmt.Errorf("encode sqs message: %w", err)
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return "", fmt.Errorf("sqs send message: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

var _ Publisher = (*SQSPublisher)(nil)
