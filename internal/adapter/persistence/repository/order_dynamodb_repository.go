package repository

import (
	"context"
	"errors"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type productionAssignmentItem struct {
	Assigned     string `dynamodbav:"assigned"`
	DeadlineDate string `dynamodbav:"deadline_date"`
	AssignedAt   string `dynamodbav:"assigned_at"`
}

type orderItem struct {
	ID                    string                    `dynamodbav:"id"`
	ClientID              string                    `dynamodbav:"client_id"`
	EstimateID            string                    `dynamodbav:"estimate_id,omitempty"`
	OrderSerial           string                    `dynamodbav:"order_serial,omitempty"`
	JobName               string                    `dynamodbav:"job_name,omitempty"`
	Quantity              int                       `dynamodbav:"quantity"`
	TotalCost             string                    `dynamodbav:"total_cost,omitempty"`
	Stage                 string                    `dynamodbav:"stage"`
	Status                string                    `dynamodbav:"status"`
	ProductionAssignments *productionAssignmentItem `dynamodbav:"production_assignments,omitempty"`
	ArtworkKeys           []string                  `dynamodbav:"artwork_keys,omitempty"`
	CreatedAt             string                    `dynamodbav:"created_at"`
	LastUpdated           string                    `dynamodbav:"last_updated"`
	CompletedAt           string                    `dynamodbav:"completed_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Converting an estimate writes to both the orders and the estimates table in
// a single transaction.

type OrderDynamoRepository struct {
	ddb            dynamoAPI
	tableName      string
	estimatesTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName, estimatesTable string) *OrderDynamoRepository {
	return newOrderRepository(ddb, tableName, estimatesTable)
}

func newOrderRepository(ddb dynamoAPI, tableName, estimatesTable string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      tableOrDefault(tableName, defaultOrdersTableName),
		estimatesTable: tableOrDefault(estimatesTable, defaultEstimatesTableName),
	}
}

func (r *OrderDynamoRepository) CreateFromEstimate(ctx context.Context, o entities.Order, estimateID string, movedAt time.Time) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.estimatesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: estimateID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #moved = :false AND #canceled = :false AND #escrow = :false"),
					UpdateExpression:    aws.String("SET #moved = :true, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#moved":      "moved_to_orders",
						"#canceled":   "is_canceled",
						"#escrow":     "in_escrow",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true":       &types.AttributeValueMemberBOOL{Value: true},
						":false":      &types.AttributeValueMemberBOOL{Value: false},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(movedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && conditionFailed(tce) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func conditionFailed(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStage(ctx context.Context, id string, u interfaces.StageUpdate) (entities.Order, error) {
	expr := "SET #stage = :stage, #status = :status, #last_updated = :last_updated"
	values := map[string]types.AttributeValue{
		":stage":        &types.AttributeValueMemberS{Value: string(u.Stage)},
		":status":       &types.AttributeValueMemberS{Value: u.Status},
		":last_updated": &types.AttributeValueMemberS{Value: formatTime(u.LastUpdated)},
	}
	names := map[string]string{
		"#stage":        "stage",
		"#status":       "status",
		"#last_updated": "last_updated",
	}
	if u.CompletedAt != nil {
		expr += ", #completed_at = :completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: formatTime(*u.CompletedAt)}
		names["#completed_at"] = "completed_at"
	}
	return r.update(ctx, id, expr, values, names)
}

func (r *OrderDynamoRepository) UpdateProductionAssignment(ctx context.Context, id string, a entities.ProductionAssignment, updatedAt time.Time) (entities.Order, error) {
	pa, err := attributevalue.Marshal(toProductionAssignmentItem(a))
	if err != nil {
		return entities.Order{}, err
	}
	return r.update(ctx, id, "SET #pa = :pa, #last_updated = :last_updated",
		map[string]types.AttributeValue{
			":pa":           pa,
			":last_updated": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		map[string]string{
			"#pa":           "production_assignments",
			"#last_updated": "last_updated",
		},
	)
}

func (r *OrderDynamoRepository) AddArtworkKey(ctx context.Context, id string, key string, updatedAt time.Time) (entities.Order, error) {
	return r.update(ctx, id, "SET #artwork = list_append(if_not_exists(#artwork, :empty), :key), #last_updated = :last_updated",
		map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":key": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: key},
			}},
			":last_updated": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		map[string]string{
			"#artwork":      "artwork_keys",
			"#last_updated": "last_updated",
		},
	)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toProductionAssignmentItem(a entities.ProductionAssignment) productionAssignmentItem {
	return productionAssignmentItem{
		Assigned:     a.Assigned,
		DeadlineDate: formatTime(a.DeadlineDate),
		AssignedAt:   formatTime(a.AssignedAt),
	}
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		EstimateID:  o.EstimateID,
		OrderSerial: o.OrderSerial,
		JobName:     o.JobName,
		Quantity:    o.Quantity,
		TotalCost:   o.TotalCost,
		Stage:       string(o.Stage),
		Status:      o.Status,
		ArtworkKeys: o.ArtworkKeys,
		CreatedAt:   formatTime(o.CreatedAt),
		LastUpdated: formatTime(o.LastUpdated),
	}
	if o.ProductionAssignments != nil {
		pa := toProductionAssignmentItem(*o.ProductionAssignments)
		it.ProductionAssignments = &pa
	}
	if o.CompletedAt != nil {
		it.CompletedAt = formatTime(*o.CompletedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:          it.ID,
		ClientID:    it.ClientID,
		EstimateID:  it.EstimateID,
		OrderSerial: it.OrderSerial,
		JobName:     it.JobName,
		Quantity:    it.Quantity,
		TotalCost:   it.TotalCost,
		Stage:       entities.Stage(it.Stage),
		Status:      it.Status,
		ArtworkKeys: it.ArtworkKeys,
		CreatedAt:   parseTime(it.CreatedAt),
		LastUpdated: parseTime(it.LastUpdated),
	}
	if it.ProductionAssignments != nil {
		o.ProductionAssignments = &entities.ProductionAssignment{
			Assigned:     it.ProductionAssignments.Assigned,
			DeadlineDate: parseTime(it.ProductionAssignments.DeadlineDate),
			AssignedAt:   parseTime(it.ProductionAssignments.AssignedAt),
		}
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		o.CompletedAt = &t
	}
	return o
}
