package repository

import (
	"context"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExamsTableName = "exams"
	examsCodeIndex        = "code-index"
)

type examItem struct {
	ExamID              string `dynamodbav:"exam_id"`
	Code                string `dynamodbav:"code"`
	Name                string `dynamodbav:"name"`
	PrepInstructions    string `dynamodbav:"prep_instructions,omitempty"`
	CollectionTechnique string `dynamodbav:"collection_technique,omitempty"`
	MedicationAlerts    string `dynamodbav:"medication_alerts,omitempty"`
	TurnaroundDays      int    `dynamodbav:"turnaround_days"`
	RequiresScheduling  bool   `dynamodbav:"requires_scheduling"`
}

// ExamCatalogDynamoRepository reads the exam catalog.
//
// Table requirements:
//   - PK: exam_id (string)
//   - GSI: code-index (PK: code)

type ExamCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExamCatalog = (*ExamCatalogDynamoRepository)(nil)

func NewExamCatalogDynamoRepository(ddb *dynamodb.Client) *ExamCatalogDynamoRepository {
	return &ExamCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXAMS_TABLE", defaultExamsTableName),
	}
}

// GetInstructionText returns empty instructions for an unknown code.
func (r *ExamCatalogDynamoRepository) GetInstructionText(ctx context.Context, examCode string) (entities.ExamInstructions, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(examsCodeIndex),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: examCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ExamInstructions{}, err
	}
	if len(out.Items) == 0 {
		return entities.ExamInstructions{}, nil
	}

	var it examItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ExamInstructions{}, err
	}
	return entities.ExamInstructions{
		PrepInstructions:    it.PrepInstructions,
		CollectionTechnique: it.CollectionTechnique,
		MedicationAlerts:    it.MedicationAlerts,
	}, nil
}

func (r *ExamCatalogDynamoRepository) GetTurnaround(ctx context.Context, examID string) (int, error) {
	it, err := r.getByID(ctx, examID)
	if err != nil {
		return 0, err
	}
	return it.TurnaroundDays, nil
}

func (r *ExamCatalogDynamoRepository) RequiresScheduling(ctx context.Context, examID string) (bool, error) {
	it, err := r.getByID(ctx, examID)
	if err != nil {
		return false, err
	}
	return it.RequiresScheduling, nil
}

func (r *ExamCatalogDynamoRepository) getByID(ctx context.Context, examID string) (examItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"exam_id": &types.AttributeValueMemberS{Value: examID},
		},
	})
	if err != nil {
		return examItem{}, err
	}
	if len(out.Item) == 0 {
		return examItem{}, nil
	}

	var it examItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return examItem{}, err
	}
	return it, nil
}
