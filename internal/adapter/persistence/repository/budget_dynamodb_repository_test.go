package repository

import (
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestBudgetItem_AttributeValueRoundTrip(t *testing.T) {
	created := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	deadline := created.Add(72 * time.Hour)
	in := entities.Budget{
		Header: entities.Header{
			ID:           "b-1",
			Kind:         entities.HeaderKindAgendamento,
			PatientID:    "p-1",
			PatientName:  "Maria",
			InsurerID:    "ins-1",
			PlanID:       "plan-a",
			RequesterID:  "req-1",
			Discount:     12.5,
			DiscountMode: entities.DiscountModePercentage,
			Status:       entities.HeaderStatusOrcamento,
			Total:        105,
			Observations: "Jejum de 8h",
			CreatedAt:    created,
			UpdatedAt:    created,
		},
		Items: []entities.LineItem{
			{ID: "li-1", ExamID: "e1", ExamCode: "HMG", Price: 50.25, CollectedAt: created, SlotID: "slot-1", Deadline: &deadline},
			{ID: "li-2", ExamID: "e2", ExamCode: "GLI", Price: 69.75, CollectedAt: created},
		},
		Payments: []entities.Payment{
			{ID: "pay-1", MethodID: "pix", Amount: 105, PaidAt: created, ProviderPaymentID: "123", ProviderPayloadRaw: []byte(`{"id":123}`)},
		},
	}

	av, err := attributevalue.MarshalMap(toBudgetItem(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	price, ok := av["total"].(*types.AttributeValueMemberS)
	if !ok || price.Value != "105" {
		t.Fatalf("expected total stored as string, got %#v", av["total"])
	}
	if _, ok := av["unit_id"]; ok {
		t.Fatalf("expected empty unit_id to be omitted")
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := fromBudgetItem(it)

	if out.Header.Discount != 12.5 || out.Header.DiscountMode != entities.DiscountModePercentage || !out.Header.CreatedAt.Equal(created) {
		t.Fatalf("unexpected header %+v", out.Header)
	}
	if len(out.Items) != 2 || out.Items[0].Price != 50.25 || out.Items[0].Deadline == nil || !out.Items[0].Deadline.Equal(deadline) {
		t.Fatalf("unexpected items %+v", out.Items)
	}
	if out.Items[1].Deadline != nil {
		t.Fatalf("expected no deadline on unscheduled item")
	}
	if len(out.Payments) != 1 || string(out.Payments[0].ProviderPayloadRaw) != `{"id":123}` {
		t.Fatalf("unexpected payments %+v", out.Payments)
	}
}

func TestScheduleKeys(t *testing.T) {
	q := entities.SlotQuery{InsurerID: "ins", PlanID: "plan", UnitID: "u1", ExamID: "e1"}
	if got := agendaKey(q); got != "ins#plan#u1#e1" {
		t.Fatalf("unexpected agenda key %q", got)
	}

	local := time.Date(2026, 4, 7, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	if got := dayOf(local); !got.Equal(time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day %v", got)
	}
}

func TestOrderItemMapping(t *testing.T) {
	o := entities.Order{ID: "o-1", BudgetID: "b-1", Kind: "orcamento", Total: 99.9, ItemCount: 3, CreatedAt: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)}
	got := fromOrderItem(toOrderItem(o))
	if got.ID != o.ID || got.BudgetID != o.BudgetID || got.Total != 99.9 || got.ItemCount != 3 || !got.CreatedAt.Equal(o.CreatedAt) {
		t.Fatalf("unexpected order %+v", got)
	}
}
