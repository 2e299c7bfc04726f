package usecase

import "errors"

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionBusy        = errors.New("session busy")
	ErrInvalidBudgetID    = errors.New("invalid budget id")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrInvalidHeaderKind  = errors.New("invalid header kind")
	ErrInvalidExam        = errors.New("invalid exam")
	ErrLookupFailed       = errors.New("external lookup failed")
	ErrInvalidMPPayload   = errors.New("invalid mercado pago payload")
	ErrPaymentNotApproved = errors.New("payment not approved by provider")
	ErrPaymentGateway     = errors.New("payment gateway not configured")
	ErrPaymentNotRecorded = errors.New("payment charged but not recorded")

	ErrSchedulingUnsupported = errors.New("header kind does not schedule exams")
	ErrSchedulingNotRequired = errors.New("exam does not require scheduling")
)
