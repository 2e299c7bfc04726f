package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// OpenSessionInput starts editing a new header.
type OpenSessionInput struct {
	Kind        entities.HeaderKind
	UserID      string
	UnitID      string
	PatientID   string
	PatientName string
	InsurerID   string
	PlanID      string
	RequesterID string
}

type AddExamInput struct {
	ExamID   string
	ExamCode string
	ExamName string
}

type ChangeDiscountInput struct {
	Value float64
	Mode  entities.DiscountMode
}

type UpdateHeaderInput struct {
	PatientID   string
	PatientName string
	RequesterID string
	UnitID      string
}

type ChangePlanInput struct {
	InsurerID string
	PlanID    string
}

// IBudgetUseCase exposes the editing-session operations of the front office:
// one call per user action on the budget form.

type IBudgetUseCase interface {
	OpenSession(ctx context.Context, in OpenSessionInput) (budget.Session, error)
	OpenBudget(ctx context.Context, budgetID, userID string) (budget.Session, error)
	GetSession(ctx context.Context, sessionID string) (budget.Session, error)
	DiscardSession(ctx context.Context, sessionID string) error

	AddExam(ctx context.Context, sessionID string, in AddExamInput) (budget.Session, error)
	RemoveExam(ctx context.Context, sessionID string, index int) (budget.Session, error)
	ChangePlan(ctx context.Context, sessionID string, in ChangePlanInput) (budget.Session, error)
	ChangeDiscount(ctx context.Context, sessionID string, in ChangeDiscountInput) (budget.Session, error)
	UpdateHeader(ctx context.Context, sessionID string, in UpdateHeaderInput) (budget.Session, error)
	AddPayment(ctx context.Context, sessionID string, in AddPaymentInput) (budget.Session, error)
	RemovePayment(ctx context.Context, sessionID string, index int) (budget.Session, error)

	Save(ctx context.Context, sessionID string) (budget.Session, error)
	ConfirmOrder(ctx context.Context, sessionID string) (budget.Session, entities.Order, error)
	Cancel(ctx context.Context, sessionID string) (budget.Session, error)
}

type BudgetUseCase struct {
	sessions    sessionRunner
	budgets     interfaces.IBudgetRepository
	orders      interfaces.IOrderRepository
	eligibility interfaces.IOrderEligibility
	publisher   interfaces.IOrderEventPublisher
	gateway     interfaces.IPaymentGateway
	prices      *PriceResolver
	catalog     interfaces.IExamCatalog
	permissions interfaces.IPermissionRepository
	clock       func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// BudgetDeps groups the collaborators of BudgetUseCase. Publisher and Gateway
// are optional.
type BudgetDeps struct {
	Sessions    interfaces.ISessionStore
	Budgets     interfaces.IBudgetRepository
	Orders      interfaces.IOrderRepository
	Eligibility interfaces.IOrderEligibility
	Publisher   interfaces.IOrderEventPublisher
	Gateway     interfaces.IPaymentGateway
	Prices      interfaces.IPriceRepository
	Catalog     interfaces.IExamCatalog
	Permissions interfaces.IPermissionRepository
}

func NewBudgetUseCase(d BudgetDeps) *BudgetUseCase {
	u := &BudgetUseCase{
		budgets:     d.Budgets,
		orders:      d.Orders,
		eligibility: d.Eligibility,
		publisher:   d.Publisher,
		gateway:     d.Gateway,
		prices:      NewPriceResolver(d.Prices),
		catalog:     d.Catalog,
		permissions: d.Permissions,
		clock:       time.Now,
	}
	u.sessions = sessionRunner{store: d.Sessions, clock: u.now}
	return u
}

func (u *BudgetUseCase) now() time.Time {
	return u.clock()
}

func (u *BudgetUseCase) discountEditable(ctx context.Context, userID string) bool {
	if strings.TrimSpace(userID) == "" || u.permissions == nil {
		return false
	}
	editable, err := u.permissions.DiscountEditable(ctx, userID)
	if err != nil {
		log.Printf("[budget][usecase] discount permission lookup failed user_id=%s err=%v", userID, err)
		return false
	}
	return editable
}

func (u *BudgetUseCase) newSession(ctx context.Context, userID string, state budget.State) (budget.Session, error) {
	userID = strings.TrimSpace(userID)
	now := u.now().UTC()
	sess := budget.Session{
		ID:               uuid.NewString(),
		UserID:           userID,
		DiscountEditable: u.discountEditable(ctx, userID),
		State:            state,
		Picker:           budget.NewSlotPicker(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.sessions.store.Save(ctx, sess); err != nil {
		return budget.Session{}, err
	}
	return sess, nil
}

func (u *BudgetUseCase) OpenSession(ctx context.Context, in OpenSessionInput) (budget.Session, error) {
	if !in.Kind.Valid() {
		return budget.Session{}, ErrInvalidHeaderKind
	}
	state := budget.NewState(entities.Header{
		Kind:        in.Kind,
		UserID:      strings.TrimSpace(in.UserID),
		UnitID:      strings.TrimSpace(in.UnitID),
		PatientID:   strings.TrimSpace(in.PatientID),
		PatientName: strings.TrimSpace(in.PatientName),
		InsurerID:   strings.TrimSpace(in.InsurerID),
		PlanID:      strings.TrimSpace(in.PlanID),
		RequesterID: strings.TrimSpace(in.RequesterID),
	})
	sess, err := u.newSession(ctx, in.UserID, state)
	if err != nil {
		return budget.Session{}, err
	}
	log.Printf("[budget][usecase] session opened session_id=%s kind=%s discount_editable=%t", sess.ID, in.Kind, sess.DiscountEditable)
	return sess, nil
}

func (u *BudgetUseCase) OpenBudget(ctx context.Context, budgetID, userID string) (budget.Session, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return budget.Session{}, ErrInvalidBudgetID
	}
	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return budget.Session{}, err
	}
	if b.Header.ID == "" {
		return budget.Session{}, ErrBudgetNotFound
	}
	sess, err := u.newSession(ctx, userID, budget.FromBudget(b))
	if err != nil {
		return budget.Session{}, err
	}
	log.Printf("[budget][usecase] session opened for budget session_id=%s budget_id=%s status=%s", sess.ID, budgetID, b.Header.Status)
	return sess, nil
}

func (u *BudgetUseCase) GetSession(ctx context.Context, sessionID string) (budget.Session, error) {
	return u.sessions.load(ctx, sessionID)
}

func (u *BudgetUseCase) DiscardSession(ctx context.Context, sessionID string) error {
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return err
	}
	log.Printf("[budget][usecase] session discarded session_id=%s", sess.ID)
	return u.sessions.store.Delete(ctx, sess.ID)
}

type examLookup struct {
	price        float64
	instructions entities.ExamInstructions
	requiresSlot bool
	turnaround   *int
}

// lookupExam fetches price, instruction text, scheduling flag and turnaround
// in parallel. The turnaround is informational: its failure is tolerated.
func (u *BudgetUseCase) lookupExam(ctx context.Context, h entities.Header, in AddExamInput) (examLookup, error) {
	var res examLookup
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := u.prices.ResolvePrice(gctx, h.PlanID, in.ExamCode)
		if err != nil {
			return lookupFailed("price", err)
		}
		res.price = p
		return nil
	})
	g.Go(func() error {
		text, err := u.catalog.GetInstructionText(gctx, in.ExamCode)
		if err != nil {
			return lookupFailed("instructions", err)
		}
		res.instructions = text
		return nil
	})
	if h.Kind.SupportsScheduling() {
		g.Go(func() error {
			requires, err := u.catalog.RequiresScheduling(gctx, in.ExamID)
			if err != nil {
				return lookupFailed("requires scheduling", err)
			}
			res.requiresSlot = requires
			return nil
		})
	}
	g.Go(func() error {
		days, err := u.catalog.GetTurnaround(gctx, in.ExamID)
		if err != nil {
			log.Printf("[budget][usecase] turnaround lookup failed exam_id=%s err=%v", in.ExamID, err)
			return nil
		}
		res.turnaround = &days
		return nil
	})

	if err := g.Wait(); err != nil {
		return examLookup{}, err
	}
	return res, nil
}

func (u *BudgetUseCase) AddExam(ctx context.Context, sessionID string, in AddExamInput) (budget.Session, error) {
	in.ExamID = strings.TrimSpace(in.ExamID)
	in.ExamCode = strings.TrimSpace(in.ExamCode)
	if in.ExamID == "" || in.ExamCode == "" {
		return budget.Session{}, ErrInvalidExam
	}
	log.Printf("[budget][usecase] add-exam start session_id=%s exam_id=%s", sessionID, in.ExamID)

	return u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		if !sess.State.Editable() {
			return budget.ErrNotEditable
		}
		if budget.HasExam(sess.State.Items, in.ExamID) {
			return budget.ErrAlreadyAdded
		}

		found, err := u.lookupExam(ctx, sess.State.Header, in)
		if err != nil {
			log.Printf("[budget][usecase] add-exam lookup failed session_id=%s exam_id=%s err=%v", sess.ID, in.ExamID, err)
			return err
		}
		if found.price <= 0 {
			log.Printf("[budget][usecase] add-exam not priced session_id=%s exam_code=%s plan_id=%s", sess.ID, in.ExamCode, sess.State.Header.PlanID)
			return budget.ErrNotPriced
		}

		item := entities.LineItem{
			ID:               uuid.NewString(),
			ExamID:           in.ExamID,
			ExamCode:         in.ExamCode,
			ExamName:         strings.TrimSpace(in.ExamName),
			Price:            found.price,
			CollectedAt:      u.now().UTC(),
			MedicationAlerts: found.instructions.MedicationAlerts,
			Instructions:     budget.ItemInstructions(found.instructions),
		}
		if found.requiresSlot {
			slot, ok := sess.Picker.SlotFor(in.ExamID)
			if !ok {
				return budget.ErrNoSlot
			}
			item.SlotID = slot.ID
			item.CollectedAt = slot.StartsAt
		}
		item.Deadline = budget.Deadline(item.CollectedAt, found.turnaround)

		next, err := budget.Reduce(sess.State, budget.AddExam{Item: item, RequiresSlot: found.requiresSlot})
		if err != nil {
			return err
		}
		sess.State = next
		if found.requiresSlot {
			sess.Picker = budget.NewSlotPicker()
		}
		log.Printf("[budget][usecase] add-exam success session_id=%s exam_id=%s price=%.2f total=%.2f", sess.ID, in.ExamID, item.Price, next.Header.Total)
		return nil
	})
}

func (u *BudgetUseCase) reduce(ctx context.Context, sessionID string, ev budget.Event) (budget.Session, error) {
	return u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		return sess.Apply(ev)
	})
}

func (u *BudgetUseCase) RemoveExam(ctx context.Context, sessionID string, index int) (budget.Session, error) {
	return u.reduce(ctx, sessionID, budget.RemoveExam{Index: index})
}

func (u *BudgetUseCase) UpdateHeader(ctx context.Context, sessionID string, in UpdateHeaderInput) (budget.Session, error) {
	return u.reduce(ctx, sessionID, budget.UpdateHeader{
		PatientID:   in.PatientID,
		PatientName: in.PatientName,
		RequesterID: in.RequesterID,
		UnitID:      in.UnitID,
	})
}

func (u *BudgetUseCase) ChangeDiscount(ctx context.Context, sessionID string, in ChangeDiscountInput) (budget.Session, error) {
	return u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		next, err := budget.Reduce(sess.State, budget.ChangeDiscount{
			Value:    in.Value,
			Mode:     in.Mode,
			Editable: sess.DiscountEditable,
		})
		if err != nil {
			return err
		}
		sess.State = next
		return nil
	})
}

// ChangePlan switches the plan and re-prices every existing line in one
// batch. The batch carries the pricing generation it was started for; if
// another plan change lands first, this batch is dropped with
// budget.ErrStaleRepricing and the newer state wins.
func (u *BudgetUseCase) ChangePlan(ctx context.Context, sessionID string, in ChangePlanInput) (budget.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return budget.Session{}, ErrInvalidSessionID
	}
	release, err := u.sessions.lock(ctx, sessionID)
	if err != nil {
		return budget.Session{}, err
	}
	defer release()

	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return budget.Session{}, err
	}
	ev := budget.ChangePlan{InsurerID: in.InsurerID, PlanID: in.PlanID}
	planned, err := budget.Reduce(sess.State, ev)
	if err != nil {
		return budget.Session{}, err
	}
	if budget.AgendaChanged(sess.State.Header, planned.Header) {
		// The previously chosen slot was discovered under the old insurer/plan.
		sess.Picker = budget.NewSlotPicker()
	}
	if planned.PricingGeneration == sess.State.PricingGeneration || len(planned.Items) == 0 {
		sess.State = planned
		sess.UpdatedAt = u.now().UTC()
		return sess, u.sessions.store.Save(ctx, sess)
	}

	log.Printf("[budget][usecase] repricing start session_id=%s plan_id=%s generation=%d items=%d", sessionID, planned.Header.PlanID, planned.PricingGeneration, len(planned.Items))
	prices, err := u.prices.ResolveAll(ctx, planned.Header.PlanID, planned.Items)
	if err != nil {
		return budget.Session{}, lookupFailed("repricing", err)
	}

	// Lookups may outlive the busy lock; apply on top of what is stored now.
	current, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return budget.Session{}, err
	}
	replanned, err := budget.Reduce(current.State, ev)
	if err != nil {
		return budget.Session{}, err
	}
	repriced, err := budget.Reduce(replanned, budget.ApplyRepricing{Generation: planned.PricingGeneration, Prices: prices})
	if err != nil {
		if errors.Is(err, budget.ErrStaleRepricing) {
			log.Printf("[budget][usecase] repricing dropped session_id=%s generation=%d current=%d", sessionID, planned.PricingGeneration, replanned.PricingGeneration)
		}
		return budget.Session{}, err
	}

	current.State = repriced
	current.Picker = sess.Picker
	current.UpdatedAt = u.now().UTC()
	if err := u.sessions.store.Save(ctx, current); err != nil {
		return budget.Session{}, err
	}
	log.Printf("[budget][usecase] repricing success session_id=%s subtotal=%.2f total=%.2f", sessionID, repriced.Subtotal, repriced.Header.Total)
	return current, nil
}

func (u *BudgetUseCase) RemovePayment(ctx context.Context, sessionID string, index int) (budget.Session, error) {
	return u.reduce(ctx, sessionID, budget.RemovePayment{Index: index})
}

func (u *BudgetUseCase) persist(ctx context.Context, sess *budget.Session) error {
	now := u.now().UTC()
	h := &sess.State.Header
	if h.ID == "" {
		h.ID = uuid.NewString()
		h.CreatedAt = now
	}
	h.UpdatedAt = now

	saved, err := u.budgets.Save(ctx, sess.State.Budget())
	if err != nil {
		log.Printf("[budget][usecase] budget save failed session_id=%s budget_id=%s err=%v", sess.ID, h.ID, err)
		return err
	}
	sess.State.Header = saved.Header
	return nil
}

// Save persists a draft as-is. Payments are not reconciled here.
func (u *BudgetUseCase) Save(ctx context.Context, sessionID string) (budget.Session, error) {
	return u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		if !sess.State.Editable() {
			return budget.ErrNotEditable
		}
		if err := budget.ValidateForSave(sess.State); err != nil {
			return err
		}
		if err := u.persist(ctx, sess); err != nil {
			return err
		}
		log.Printf("[budget][usecase] budget saved session_id=%s budget_id=%s total=%.2f", sess.ID, sess.State.Header.ID, sess.State.Header.Total)
		return nil
	})
}

// ConfirmOrder turns the draft into an order: mandatory fields, at least one
// exam, payments matching the total, then the eligibility check.
func (u *BudgetUseCase) ConfirmOrder(ctx context.Context, sessionID string) (budget.Session, entities.Order, error) {
	var order entities.Order
	sess, err := u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		if err := budget.CheckConfirmable(sess.State); err != nil {
			log.Printf("[budget][usecase] confirm rejected session_id=%s err=%v", sess.ID, err)
			return err
		}

		message := ""
		if id := sess.State.Header.ID; id != "" && u.eligibility != nil {
			m, err := u.eligibility.ValidateOrderEligibility(ctx, id)
			if err != nil {
				return lookupFailed("order eligibility", err)
			}
			message = m
		}
		next, err := budget.ConfirmOrder(sess.State, message)
		if err != nil {
			log.Printf("[budget][usecase] confirm rejected session_id=%s err=%v", sess.ID, err)
			return err
		}
		draft := sess.State
		sess.State = next
		if err := u.persist(ctx, sess); err != nil {
			return err
		}

		h := sess.State.Header
		created, err := u.orders.Create(ctx, entities.Order{
			ID:        uuid.NewString(),
			BudgetID:  h.ID,
			Kind:      string(h.Kind),
			PatientID: h.PatientID,
			UnitID:    h.UnitID,
			Total:     budget.Round2(h.Total),
			ItemCount: len(sess.State.Items),
			CreatedAt: u.now().UTC(),
		})
		if err != nil {
			log.Printf("[budget][usecase] order create failed session_id=%s budget_id=%s err=%v", sess.ID, h.ID, err)
			// Put the stored budget back to draft so the confirmation can be retried.
			draft.Header.ID = h.ID
			draft.Header.CreatedAt = h.CreatedAt
			draft.Header.UpdatedAt = h.UpdatedAt
			if _, rerr := u.budgets.Save(ctx, draft.Budget()); rerr != nil {
				log.Printf("[budget][usecase] budget revert failed budget_id=%s err=%v", h.ID, rerr)
			}
			// Keep the stored budget id in the session so a retry updates it.
			sess.State = draft
			sess.UpdatedAt = u.now().UTC()
			if serr := u.sessions.store.Save(ctx, *sess); serr != nil {
				log.Printf("[budget][usecase] session save after revert failed session_id=%s err=%v", sess.ID, serr)
			}
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return budget.Session{}, entities.Order{}, err
	}

	if u.publisher != nil {
		if err := u.publisher.PublishOrderConfirmed(ctx, order); err != nil {
			log.Printf("[budget][usecase] order event publish failed order_id=%s err=%v", order.ID, err)
		}
	}
	log.Printf("[budget][usecase] order confirmed session_id=%s budget_id=%s order_id=%s total=%.2f", sess.ID, order.BudgetID, order.ID, order.Total)
	return sess, order, nil
}

// Cancel cancels a draft. A draft never saved is simply discarded.
func (u *BudgetUseCase) Cancel(ctx context.Context, sessionID string) (budget.Session, error) {
	return u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		next, err := budget.Cancel(sess.State)
		if err != nil {
			return err
		}
		sess.State = next
		if sess.State.Header.ID == "" {
			return nil
		}
		return u.persist(ctx, sess)
	})
}
