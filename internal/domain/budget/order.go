package budget

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"laboratorio_xpto/internal/domain/entities"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// mandatoryFieldOrder is the order the front office reports missing fields in.
var mandatoryFieldOrder = []string{"patient_id", "insurer_id", "plan_id", "requester_id", "patient_name"}

func headerValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateMandatory checks the header fields required to save or confirm.
func ValidateMandatory(h entities.Header) error {
	h.PatientID = strings.TrimSpace(h.PatientID)
	h.PatientName = strings.TrimSpace(h.PatientName)
	h.InsurerID = strings.TrimSpace(h.InsurerID)
	h.PlanID = strings.TrimSpace(h.PlanID)
	h.RequesterID = strings.TrimSpace(h.RequesterID)

	err := headerValidator().Struct(h)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		missing[fe.Field()] = struct{}{}
	}
	for _, f := range mandatoryFieldOrder {
		if _, ok := missing[f]; ok {
			return &MissingFieldError{Field: f}
		}
	}
	return &MissingFieldError{Field: verrs[0].Field()}
}

// ValidateForSave is the check applied to a plain save of a draft. Payments
// are never reconciled here.
func ValidateForSave(s State) error {
	if err := ValidateMandatory(s.Header); err != nil {
		return err
	}
	if len(s.Items) == 0 {
		return ErrNoLineItems
	}
	return nil
}

// CheckConfirmable runs the local steps of the draft to order transition:
// mandatory fields, at least one exam, payments matching the total.
func CheckConfirmable(s State) error {
	if s.Header.Status != entities.HeaderStatusOrcamento {
		return ErrInvalidTransition
	}
	if err := ValidateForSave(s); err != nil {
		return err
	}
	return ValidatePayments(s.Payments, s.Header.Total)
}

// ConfirmOrder moves a draft to order. eligibilityMessage is the answer of the
// external eligibility check; a non-empty message blocks the transition.
func ConfirmOrder(s State, eligibilityMessage string) (State, error) {
	if err := CheckConfirmable(s); err != nil {
		return s, err
	}
	if msg := strings.TrimSpace(eligibilityMessage); msg != "" {
		return s, &EligibilityError{Message: msg}
	}
	next := s.clone()
	next.Header.Status = entities.HeaderStatusPedido
	return next, nil
}

// Cancel moves a draft to cancelled. Orders are not cancelled from here.
func Cancel(s State) (State, error) {
	if s.Header.Status != entities.HeaderStatusOrcamento {
		return s, ErrInvalidTransition
	}
	next := s.clone()
	next.Header.Status = entities.HeaderStatusCancelado
	return next, nil
}
