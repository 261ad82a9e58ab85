package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecordsTableName = "records"

	// The whole collection lives in one document item under this key; every
	// save replaces the blob. Matches the single-editor model: there is no
	// per-record item to coordinate on.
	collectionKey = "corporateData"
)

type collectionItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RecordDynamoRepository persists the record collection in DynamoDB as a
// single JSON document.
//
// Table requirements:
//   - PK: id (string)
//
// Failure model: absent or unparseable stored content loads as an empty
// collection (fail closed, never crash the caller); transport errors
// propagate untouched and are not retried.

type RecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecordRepository = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb *dynamodb.Client) *RecordDynamoRepository {
	return &RecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *RecordDynamoRepository) LoadAll(ctx context.Context) ([]entities.Record, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: collectionKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.Record{}, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Printf("[records][repo] unreadable collection item, loading empty: %v", err)
		return []entities.Record{}, nil
	}

	var records []entities.Record
	if err := json.Unmarshal([]byte(it.Payload), &records); err != nil {
		log.Printf("[records][repo] corrupt collection payload, loading empty: %v", err)
		return []entities.Record{}, nil
	}
	if records == nil {
		records = []entities.Record{}
	}
	return records, nil
}

func (r *RecordDynamoRepository) SaveAll(ctx context.Context, records []entities.Record) error {
	if records == nil {
		records = []entities.Record{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(collectionItem{
		ID:        collectionKey,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
