package repository

import (
	"context"
	"fmt"
	"strconv"

	"letterpress_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository allocates order serial sequences with an atomic
// ADD on a per-year counter item.
//
// Table requirements:
//   - PK: id (string), e.g. "order_serial#2024"

type CounterDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISerialAllocator = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client, tableName string) *CounterDynamoRepository {
	return newCounterRepository(ddb, tableName)
}

func newCounterRepository(ddb dynamoAPI, tableName string) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCountersTableName),
	}
}

func orderSerialCounterID(year int) string {
	return fmt.Sprintf("order_serial#%d", year)
}

func (r *CounterDynamoRepository) NextOrderSerial(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderSerialCounterID(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no sequence", orderSerialCounterID(year))
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
