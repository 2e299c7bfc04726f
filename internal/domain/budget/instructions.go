package budget

import (
	"strings"

	"laboratorio_xpto/internal/domain/entities"
)

const instructionSeparator = ", "

// MergeInstructions splits every input on ", ", drops empty pieces and
// duplicates (exact match) and joins the rest in order of first appearance.
func MergeInstructions(parts ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, piece := range strings.Split(part, instructionSeparator) {
			if strings.TrimSpace(piece) == "" {
				continue
			}
			if _, ok := seen[piece]; ok {
				continue
			}
			seen[piece] = struct{}{}
			out = append(out, piece)
		}
	}
	return strings.Join(out, instructionSeparator)
}

// ItemInstructions is the observation text stored on a line item.
func ItemInstructions(in entities.ExamInstructions) string {
	return MergeInstructions(in.PrepInstructions, in.CollectionTechnique)
}

// AccumulateInstructions folds the stored text of every item into the
// medications and observations header fields.
func AccumulateInstructions(items []entities.LineItem) (medications, observations string) {
	alerts := make([]string, 0, len(items))
	notes := make([]string, 0, len(items))
	for _, it := range items {
		alerts = append(alerts, it.MedicationAlerts)
		notes = append(notes, it.Instructions)
	}
	return MergeInstructions(alerts...), MergeInstructions(notes...)
}
