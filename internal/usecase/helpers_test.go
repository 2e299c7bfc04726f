package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
	mock_interfaces "laboratorio_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memSessionStore is an in-memory ISessionStore for use case tests.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]budget.Session
	locks    map[string]string
	seq      int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]budget.Session{}, locks: map[string]string{}}
}

func (m *memSessionStore) Save(_ context.Context, s budget.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessionStore) Get(_ context.Context, id string) (budget.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id], nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.locks, id)
	return nil
}

func (m *memSessionStore) Lock(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.locks[id]; held {
		return "", nil
	}
	m.seq++
	token := "t" + strconv.Itoa(m.seq)
	m.locks[id] = token
	return token, nil
}

func (m *memSessionStore) Unlock(_ context.Context, id, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] == token {
		delete(m.locks, id)
	}
	return nil
}

func (m *memSessionStore) put(t *testing.T, s budget.Session) {
	t.Helper()
	if err := m.Save(context.Background(), s); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func (m *memSessionStore) get(t *testing.T, id string) budget.Session {
	t.Helper()
	s, _ := m.Get(context.Background(), id)
	return s
}

type budgetMocks struct {
	budgets     *mock_interfaces.MockIBudgetRepository
	orders      *mock_interfaces.MockIOrderRepository
	eligibility *mock_interfaces.MockIOrderEligibility
	publisher   *mock_interfaces.MockIOrderEventPublisher
	gateway     *mock_interfaces.MockIPaymentGateway
	prices      *mock_interfaces.MockIPriceRepository
	catalog     *mock_interfaces.MockIExamCatalog
	permissions *mock_interfaces.MockIPermissionRepository
}

var testNow = time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

func newBudgetUseCaseForTest(t *testing.T) (*BudgetUseCase, *memSessionStore, budgetMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		budgets:     mock_interfaces.NewMockIBudgetRepository(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		eligibility: mock_interfaces.NewMockIOrderEligibility(ctrl),
		publisher:   mock_interfaces.NewMockIOrderEventPublisher(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		prices:      mock_interfaces.NewMockIPriceRepository(ctrl),
		catalog:     mock_interfaces.NewMockIExamCatalog(ctrl),
		permissions: mock_interfaces.NewMockIPermissionRepository(ctrl),
	}
	store := newMemSessionStore()
	uc := NewBudgetUseCase(BudgetDeps{
		Sessions:    store,
		Budgets:     m.budgets,
		Orders:      m.orders,
		Eligibility: m.eligibility,
		Publisher:   m.publisher,
		Gateway:     m.gateway,
		Prices:      m.prices,
		Catalog:     m.catalog,
		Permissions: m.permissions,
	})
	uc.clock = func() time.Time { return testNow }
	return uc, store, m
}

func completeHeader(kind entities.HeaderKind) entities.Header {
	return entities.Header{
		Kind:        kind,
		PatientID:   "pat-1",
		PatientName: "Maria Silva",
		InsurerID:   "ins-1",
		PlanID:      "plan-a",
		UnitID:      "unit-1",
		RequesterID: "req-1",
		UserID:      "user-1",
	}
}

func draftSession(id string, h entities.Header, items ...entities.LineItem) budget.Session {
	state := budget.NewState(h)
	for _, it := range items {
		next, err := budget.Reduce(state, budget.AddExam{Item: it})
		if err != nil {
			panic(err)
		}
		state = next
	}
	return budget.Session{
		ID:               id,
		UserID:           h.UserID,
		DiscountEditable: true,
		State:            state,
		Picker:           budget.NewSlotPicker(),
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func lineItem(examID, code string, price float64) entities.LineItem {
	return entities.LineItem{ID: "li-" + examID, ExamID: examID, ExamCode: code, Price: price, CollectedAt: testNow}
}
