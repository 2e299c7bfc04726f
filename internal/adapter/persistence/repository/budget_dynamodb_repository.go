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

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	PatientID    string `dynamodbav:"patient_id"`
	PatientName  string `dynamodbav:"patient_name"`
	InsurerID    string `dynamodbav:"insurer_id"`
	PlanID       string `dynamodbav:"plan_id"`
	UnitID       string `dynamodbav:"unit_id,omitempty"`
	RequesterID  string `dynamodbav:"requester_id"`
	UserID       string `dynamodbav:"user_id,omitempty"`
	Discount     string `dynamodbav:"discount"`
	DiscountMode string `dynamodbav:"discount_mode"`
	Status       int    `dynamodbav:"status"`
	Total        string `dynamodbav:"total"`
	Medications  string `dynamodbav:"medications,omitempty"`
	Observations string `dynamodbav:"observations,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`

	Items    []budgetLineItem    `dynamodbav:"items"`
	Payments []budgetPaymentItem `dynamodbav:"payments"`
}

type budgetLineItem struct {
	ID               string `dynamodbav:"id"`
	ExamID           string `dynamodbav:"exam_id"`
	ExamCode         string `dynamodbav:"exam_code"`
	ExamName         string `dynamodbav:"exam_name,omitempty"`
	Price            string `dynamodbav:"price"`
	CollectedAt      string `dynamodbav:"collected_at"`
	SlotID           string `dynamodbav:"slot_id,omitempty"`
	Deadline         string `dynamodbav:"deadline,omitempty"`
	MedicationAlerts string `dynamodbav:"medication_alerts,omitempty"`
	Instructions     string `dynamodbav:"instructions,omitempty"`
}

type budgetPaymentItem struct {
	ID                 string `dynamodbav:"id"`
	MethodID           string `dynamodbav:"method_id"`
	Amount             string `dynamodbav:"amount"`
	PaidAt             string `dynamodbav:"paid_at"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// BudgetDynamoRepository persists the composite budget in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Header, lines and payments are one item, so a save replaces all three at once.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	h := b.Header
	it := budgetItem{
		ID:           h.ID,
		Kind:         string(h.Kind),
		PatientID:    h.PatientID,
		PatientName:  h.PatientName,
		InsurerID:    h.InsurerID,
		PlanID:       h.PlanID,
		UnitID:       h.UnitID,
		RequesterID:  h.RequesterID,
		UserID:       h.UserID,
		Discount:     floatToString(h.Discount),
		DiscountMode: string(h.DiscountMode),
		Status:       int(h.Status),
		Total:        floatToString(h.Total),
		Medications:  h.Medications,
		Observations: h.Observations,
		CreatedAt:    formatTime(h.CreatedAt),
		UpdatedAt:    formatTime(h.UpdatedAt),
		Items:        make([]budgetLineItem, 0, len(b.Items)),
		Payments:     make([]budgetPaymentItem, 0, len(b.Payments)),
	}
	for _, li := range b.Items {
		row := budgetLineItem{
			ID:               li.ID,
			ExamID:           li.ExamID,
			ExamCode:         li.ExamCode,
			ExamName:         li.ExamName,
			Price:            floatToString(li.Price),
			CollectedAt:      formatTime(li.CollectedAt),
			SlotID:           li.SlotID,
			MedicationAlerts: li.MedicationAlerts,
			Instructions:     li.Instructions,
		}
		if li.Deadline != nil {
			row.Deadline = formatTime(*li.Deadline)
		}
		it.Items = append(it.Items, row)
	}
	for _, p := range b.Payments {
		it.Payments = append(it.Payments, budgetPaymentItem{
			ID:                 p.ID,
			MethodID:           p.MethodID,
			Amount:             floatToString(p.Amount),
			PaidAt:             formatTime(p.PaidAt),
			ProviderPaymentID:  p.ProviderPaymentID,
			ProviderStatus:     p.ProviderStatus,
			ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		})
	}
	return it
}

func fromBudgetItem(it budgetItem) entities.Budget {
	b := entities.Budget{
		Header: entities.Header{
			ID:           it.ID,
			Kind:         entities.HeaderKind(it.Kind),
			PatientID:    it.PatientID,
			PatientName:  it.PatientName,
			InsurerID:    it.InsurerID,
			PlanID:       it.PlanID,
			UnitID:       it.UnitID,
			RequesterID:  it.RequesterID,
			UserID:       it.UserID,
			Discount:     parseFloat(it.Discount),
			DiscountMode: entities.DiscountMode(it.DiscountMode),
			Status:       entities.HeaderStatus(it.Status),
			Total:        parseFloat(it.Total),
			Medications:  it.Medications,
			Observations: it.Observations,
			CreatedAt:    parseTime(it.CreatedAt),
			UpdatedAt:    parseTime(it.UpdatedAt),
		},
		Items:    make([]entities.LineItem, 0, len(it.Items)),
		Payments: make([]entities.Payment, 0, len(it.Payments)),
	}
	for _, row := range it.Items {
		li := entities.LineItem{
			ID:               row.ID,
			ExamID:           row.ExamID,
			ExamCode:         row.ExamCode,
			ExamName:         row.ExamName,
			Price:            parseFloat(row.Price),
			CollectedAt:      parseTime(row.CollectedAt),
			SlotID:           row.SlotID,
			MedicationAlerts: row.MedicationAlerts,
			Instructions:     row.Instructions,
		}
		if row.Deadline != "" {
			d := parseTime(row.Deadline)
			li.Deadline = &d
		}
		b.Items = append(b.Items, li)
	}
	for _, row := range it.Payments {
		p := entities.Payment{
			ID:                row.ID,
			MethodID:          row.MethodID,
			Amount:            parseFloat(row.Amount),
			PaidAt:            parseTime(row.PaidAt),
			ProviderPaymentID: row.ProviderPaymentID,
			ProviderStatus:    row.ProviderStatus,
		}
		if row.ProviderPayloadRaw != "" {
			p.ProviderPayloadRaw = []byte(row.ProviderPayloadRaw)
		}
		b.Payments = append(b.Payments, p)
	}
	return b
}

