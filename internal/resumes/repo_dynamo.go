package resumes

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the subset of the DynamoDB client used by DynamoRepo.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoRepo stores records as items in a DynamoDB table keyed by resumeId.
type DynamoRepo struct {
	client PutItemAPI
	table  string
}

// NewDynamoRepo creates a repo from a shared AWS config.
func NewDynamoRepo(cfg aws.Config, table string) (*DynamoRepo, error) {
	return NewDynamoRepoWithClient(dynamodb.NewFromConfig(cfg), table)
}

// NewDynamoRepoWithClient creates a repo around an existing client.
func NewDynamoRepoWithClient(client PutItemAPI, table string) (*DynamoRepo, error) {
	if strings.TrimSpace(table) == "" {
		return nil, fmt.Errorf("dynamodb table is required")
	}
	return &DynamoRepo{client: client, table: table}, nil
}

// Put writes the record unconditionally; resume ids are random so no existence check is made.
func (r *DynamoRepo) Put(ctx context.Context, rec Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record id=%s: %w", rec.ResumeID, err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("dynamodb put item table=%s id=%s: %w", r.table, rec.ResumeID, err)
	}
	return nil
}

var _ Repo = (*DynamoRepo)(nil)
