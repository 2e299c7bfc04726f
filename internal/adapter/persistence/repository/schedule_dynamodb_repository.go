package repository

import (
	"context"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSlotsTableName = "slots"

	// Fixed width so starts_at sorts lexicographically.
	slotTimeLayout = "2006-01-02T15:04:05Z"
)

type slotItem struct {
	AgendaKey string `dynamodbav:"agenda_key"`
	StartsAt  string `dynamodbav:"starts_at"`
	SlotID    string `dynamodbav:"slot_id"`
	Capacity  int    `dynamodbav:"capacity"`
}

// ScheduleDynamoRepository queries the collection agenda.
//
// Table requirements:
//   - PK: agenda_key (string) = insurer#plan#unit#exam
//   - SK: starts_at (string, UTC, slotTimeLayout)
//
// A slot with capacity > 0 is bookable.

type ScheduleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduleRepository = (*ScheduleDynamoRepository)(nil)

func NewScheduleDynamoRepository(ddb *dynamodb.Client) *ScheduleDynamoRepository {
	return &ScheduleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SLOTS_TABLE", defaultSlotsTableName),
	}
}

func agendaKey(q entities.SlotQuery) string {
	return strings.Join([]string{q.InsurerID, q.PlanID, q.UnitID, q.ExamID}, "#")
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// query walks every page of bookable slots in [from, until], earliest first.
// visit returning false stops the walk.
func (r *ScheduleDynamoRepository) query(ctx context.Context, q entities.SlotQuery, from, until time.Time, visit func(slotItem) bool) error {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("agenda_key = :key AND starts_at BETWEEN :from AND :until"),
		FilterExpression:       aws.String("#capacity > :zero"),
		ExpressionAttributeNames: map[string]string{
			"#capacity": "capacity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":   &types.AttributeValueMemberS{Value: agendaKey(q)},
			":from":  &types.AttributeValueMemberS{Value: from.UTC().Format(slotTimeLayout)},
			":until": &types.AttributeValueMemberS{Value: until.UTC().Format(slotTimeLayout)},
			":zero":  &types.AttributeValueMemberN{Value: "0"},
		},
		ScanIndexForward: aws.Bool(true),
	}

	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			var it slotItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return err
			}
			if !visit(it) {
				return nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ScheduleDynamoRepository) NextAvailableDate(ctx context.Context, q entities.SlotQuery, from, until time.Time) (time.Time, bool, error) {
	var (
		date  time.Time
		found bool
	)
	err := r.query(ctx, q, from, until, func(it slotItem) bool {
		starts, err := time.Parse(slotTimeLayout, it.StartsAt)
		if err != nil {
			return true
		}
		date, found = dayOf(starts), true
		return false
	})
	if err != nil {
		return time.Time{}, false, err
	}
	return date, found, nil
}

func (r *ScheduleDynamoRepository) AvailableDates(ctx context.Context, q entities.SlotQuery, from, until time.Time) ([]time.Time, error) {
	dates := []time.Time{}
	err := r.query(ctx, q, from, until, func(it slotItem) bool {
		starts, err := time.Parse(slotTimeLayout, it.StartsAt)
		if err != nil {
			return true
		}
		d := dayOf(starts)
		if n := len(dates); n == 0 || !dates[n-1].Equal(d) {
			dates = append(dates, d)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *ScheduleDynamoRepository) AvailableTimeSlots(ctx context.Context, q entities.SlotQuery, date time.Time) ([]entities.Slot, error) {
	start := dayOf(date)
	end := start.Add(24*time.Hour - time.Second)

	slots := []entities.Slot{}
	err := r.query(ctx, q, start, end, func(it slotItem) bool {
		starts, err := time.Parse(slotTimeLayout, it.StartsAt)
		if err != nil {
			return true
		}
		id := it.SlotID
		if id == "" {
			id = it.StartsAt
		}
		slots = append(slots, entities.Slot{ID: id, StartsAt: starts})
		return true
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}
