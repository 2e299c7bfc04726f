package repository

import (
	"context"
	"time"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersBudgetIDIndex    = "budget_id-index"
)

type orderItem struct {
	ID        string `dynamodbav:"id"`
	BudgetID  string `dynamodbav:"budget_id"`
	Kind      string `dynamodbav:"kind"`
	PatientID string `dynamodbav:"patient_id"`
	UnitID    string `dynamodbav:"unit_id,omitempty"`
	Total     string `dynamodbav:"total"`
	ItemCount int    `dynamodbav:"item_count"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// GetByBudgetID returns the order created from budgetID, or a zero Order.
func (r *OrderDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:        o.ID,
		BudgetID:  o.BudgetID,
		Kind:      o.Kind,
		PatientID: o.PatientID,
		UnitID:    o.UnitID,
		Total:     floatToString(o.Total),
		ItemCount: o.ItemCount,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:        it.ID,
		BudgetID:  it.BudgetID,
		Kind:      it.Kind,
		PatientID: it.PatientID,
		UnitID:    it.UnitID,
		Total:     parseFloat(it.Total),
		ItemCount: it.ItemCount,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
