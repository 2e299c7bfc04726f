package budget

import (
	"testing"

	"laboratorio_xpto/internal/domain/entities"
)

func TestMergeInstructions(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "dedup keeps first appearance", parts: []string{"jejum", "jejum, repouso"}, want: "jejum, repouso"},
		{name: "empty pieces dropped", parts: []string{"", "jejum", ""}, want: "jejum"},
		{name: "exact match only", parts: []string{"Jejum", "jejum"}, want: "Jejum, jejum"},
		{name: "nothing", parts: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MergeInstructions(tc.parts...); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAccumulateInstructions_AddAndRemove(t *testing.T) {
	a := entities.LineItem{ExamID: "A", ExamCode: "A", Price: 10,
		MedicationAlerts: "jejum",
		Instructions:     ItemInstructions(entities.ExamInstructions{PrepInstructions: "jejum de 8h", CollectionTechnique: "punção venosa"})}
	b := entities.LineItem{ExamID: "B", ExamCode: "B", Price: 10,
		MedicationAlerts: "jejum, repouso",
		Instructions:     ItemInstructions(entities.ExamInstructions{PrepInstructions: "jejum de 8h", CollectionTechnique: "urina jato médio"})}

	s := NewState(draftHeader())
	s = mustReduce(t, s, AddExam{Item: a})
	s = mustReduce(t, s, AddExam{Item: b})
	if s.Header.Medications != "jejum, repouso" {
		t.Fatalf("unexpected medications %q", s.Header.Medications)
	}
	if s.Header.Observations != "jejum de 8h, punção venosa, urina jato médio" {
		t.Fatalf("unexpected observations %q", s.Header.Observations)
	}

	s = mustReduce(t, s, RemoveExam{Index: 0})
	if s.Header.Medications != "jejum, repouso" {
		t.Fatalf("unexpected medications after remove %q", s.Header.Medications)
	}
	if s.Header.Observations != "jejum de 8h, urina jato médio" {
		t.Fatalf("unexpected observations after remove %q", s.Header.Observations)
	}

	s = mustReduce(t, s, RemoveExam{Index: 0})
	if s.Header.Medications != "" || s.Header.Observations != "" {
		t.Fatalf("expected empty accumulators, got %q / %q", s.Header.Medications, s.Header.Observations)
	}
}
