package repository

import (
	"context"

	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "prices"

type priceItem struct {
	PlanID   string `dynamodbav:"plan_id"`
	ExamCode string `dynamodbav:"exam_code"`
	Price    string `dynamodbav:"price"`
}

// PriceDynamoRepository reads the plan price table.
//
// Table requirements:
//   - PK: plan_id (string)
//   - SK: exam_code (string)

type PriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceRepository = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb *dynamodb.Client) *PriceDynamoRepository {
	return &PriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICES_TABLE", defaultPricesTableName),
	}
}

// GetPrice returns 0 when the plan has no price for the exam.
func (r *PriceDynamoRepository) GetPrice(ctx context.Context, planID, examCode string) (float64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"plan_id":   &types.AttributeValueMemberS{Value: planID},
			"exam_code": &types.AttributeValueMemberS{Value: examCode},
		},
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var it priceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return parseFloat(it.Price), nil
}
