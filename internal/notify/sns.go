package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// PublishAPI is the subset of the SNS client used by SNSPublisher.
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes notifications to an SNS topic.
type SNSPublisher struct {
	client   PublishAPI
	topicARN string
}

// NewSNSPublisher constructs an SNS-backed publisher from a shared AWS config.
func NewSNSPublisher(cfg aws.Config, topicARN string) (*SNSPublisher, error) {
	return NewSNSPublisherWithClient(sns.NewFromConfig(cfg), topicARN)
}

// NewSNSPublisherWithClient constructs a publisher around an existing client.
func NewSNSPublisherWithClient(client PublishAPI, topicARN string) (*SNSPublisher, error) {
	if strings.TrimSpace(topicARN) == "" {
		return nil, fmt.Errorf("sns topic arn is required")
	}
	return &SNSPublisher{client: client, topicARN: topicARN}, nil
}

// Publish sends msg to the configured topic.
func (p *SNSPublisher) Publish(ctx context.Context, msg Message) (string, error) {
	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(msg.Subject),
		Message:  aws.String(msg.Body),
	})
	if err != nil {
		return "", fmt.Errorf("sns publish topic=%s: %w", p.topicARN, err)
	}
	return aws.ToString(out.MessageId), nil
}

var _ Publisher = (*SNSPublisher)(nil)
