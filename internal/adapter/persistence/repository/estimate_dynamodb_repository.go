package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/pricing"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesClientIDIndex    = "client_id-index"
)

type estimateItem struct {
	ID               string                         `dynamodbav:"id"`
	ClientID         string                         `dynamodbav:"client_id"`
	VersionID        string                         `dynamodbav:"version_id"`
	JobName          string                         `dynamodbav:"job_name,omitempty"`
	Quantity         int                            `dynamodbav:"quantity"`
	MarkupPercentage string                         `dynamodbav:"markup_percentage"`
	PerProcessCosts  map[string]string              `dynamodbav:"per_process_costs,omitempty"`
	Calculations     pricing.EnhancedEstimateRecord `dynamodbav:"calculations"`
	MovedToOrders    bool                           `dynamodbav:"moved_to_orders"`
	IsCanceled       bool                           `dynamodbav:"is_canceled"`
	InEscrow         bool                           `dynamodbav:"in_escrow"`
	CreatedAt        string                         `dynamodbav:"created_at"`
	UpdatedAt        string                         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Updates are unconditional field merges (last write wins) guarded only by
// the record existing.

type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return newEstimateRepository(ddb, tableName)
}

func newEstimateRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Estimate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})

	items := make([]entities.Estimate, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEstimateItem(it))
		}
	}
	return items, nil
}

func (r *EstimateDynamoRepository) UpdateVersion(ctx context.Context, id string, versionID string, updatedAt time.Time) (entities.Estimate, error) {
	return r.update(ctx, id, "SET #version_id = :version_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":version_id": &types.AttributeValueMemberS{Value: versionID},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		map[string]string{
			"#version_id": "version_id",
			"#updated_at": "updated_at",
		},
	)
}

func (r *EstimateDynamoRepository) UpdateCanceled(ctx context.Context, id string, canceled bool, updatedAt time.Time) (entities.Estimate, error) {
	return r.updateFlag(ctx, id, "is_canceled", canceled, updatedAt)
}

func (r *EstimateDynamoRepository) UpdateEscrow(ctx context.Context, id string, inEscrow bool, updatedAt time.Time) (entities.Estimate, error) {
	return r.updateFlag(ctx, id, "in_escrow", inEscrow, updatedAt)
}

func (r *EstimateDynamoRepository) updateFlag(ctx context.Context, id, attr string, value bool, updatedAt time.Time) (entities.Estimate, error) {
	return r.update(ctx, id, "SET #flag = :flag, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":flag":       &types.AttributeValueMemberBOOL{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		map[string]string{
			"#flag":       attr,
			"#updated_at": "updated_at",
		},
	)
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:               e.ID,
		ClientID:         e.ClientID,
		VersionID:        e.VersionID,
		JobName:          e.JobName,
		Quantity:         e.Quantity,
		MarkupPercentage: floatToString(e.MarkupPercentage),
		PerProcessCosts:  e.PerProcessCosts,
		Calculations:     e.Calculations,
		MovedToOrders:    e.MovedToOrders,
		IsCanceled:       e.IsCanceled,
		InEscrow:         e.InEscrow,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	markup, _ := strconv.ParseFloat(it.MarkupPercentage, 64)
	return entities.Estimate{
		ID:               it.ID,
		ClientID:         it.ClientID,
		VersionID:        it.VersionID,
		JobName:          it.JobName,
		Quantity:         it.Quantity,
		MarkupPercentage: markup,
		PerProcessCosts:  it.PerProcessCosts,
		Calculations:     it.Calculations,
		MovedToOrders:    it.MovedToOrders,
		IsCanceled:       it.IsCanceled,
		InEscrow:         it.InEscrow,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
