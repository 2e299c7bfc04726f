package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const repricingConcurrency = 8

// PriceResolver resolves exam prices under a plan.
type PriceResolver struct {
	repo interfaces.IPriceRepository
}

func NewPriceResolver(repo interfaces.IPriceRepository) *PriceResolver {
	return &PriceResolver{repo: repo}
}

// ResolvePrice returns 0 when the plan has no price for the exam; the caller
// treats 0 as not priced.
func (r *PriceResolver) ResolvePrice(ctx context.Context, planID, examCode string) (float64, error) {
	planID = strings.TrimSpace(planID)
	examCode = strings.TrimSpace(examCode)
	if planID == "" || examCode == "" {
		return 0, nil
	}
	price, err := r.repo.GetPrice(ctx, planID, examCode)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, nil
	}
	return price, nil
}

// ResolveAll issues one lookup per item and returns the prices keyed by exam
// code. It is all-or-nothing: the first failure cancels the batch.
func (r *PriceResolver) ResolveAll(ctx context.Context, planID string, items []entities.LineItem) (map[string]float64, error) {
	prices := make(map[string]float64, len(items))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(repricingConcurrency)
	for _, it := range items {
		code := it.ExamCode
		g.Go(func() error {
			p, err := r.ResolvePrice(gctx, planID, code)
			if err != nil {
				log.Printf("[budget][price] lookup failed plan_id=%s exam_code=%s err=%v", planID, code, err)
				return err
			}
			mu.Lock()
			prices[code] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prices, nil
}
