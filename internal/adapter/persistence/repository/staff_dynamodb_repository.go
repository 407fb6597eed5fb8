package repository

import (
	"context"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStaffTableName = "staff"

type staffItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Email  string `dynamodbav:"email"`
	Role   string `dynamodbav:"role"`
	Active bool   `dynamodbav:"active"`
}

// StaffDynamoRepository reads staff members from DynamoDB. Staff records are
// managed by the identity tooling; this service never writes them.
//
// Table requirements:
//   - PK: id (string)

type StaffDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IStaffRepository = (*StaffDynamoRepository)(nil)

func NewStaffDynamoRepository(ddb *dynamodb.Client, tableName string) *StaffDynamoRepository {
	return newStaffRepository(ddb, tableName)
}

func newStaffRepository(ddb dynamoAPI, tableName string) *StaffDynamoRepository {
	return &StaffDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultStaffTableName),
	}
}

func (r *StaffDynamoRepository) GetByID(ctx context.Context, id string) (entities.Staff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Staff{}, err
	}
	if len(out.Item) == 0 {
		return entities.Staff{}, nil
	}

	var it staffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Staff{}, err
	}
	return entities.Staff{
		ID:     it.ID,
		Name:   it.Name,
		Email:  it.Email,
		Role:   entities.ParseRole(it.Role),
		Active: it.Active,
	}, nil
}
