package services

import (
	"context"
	"log/slog"
	"time"

	"sop_inventory/internal/cache"
	"sop_inventory/internal/models"
	"sop_inventory/internal/repository"
)

// DashboardSummary aggregates inventory counts for the front page. Items are
// bucketed by the kind of their latest status; statuses of unknown kind land
// in Other instead of disappearing from the totals.
type DashboardSummary struct {
	TotalItems  int64 `json:"total_items"`
	ActiveLoans int64 `json:"active_loans"`
	Available   int64 `json:"available"`
	Borrowed    int64 `json:"borrowed"`
	Defect      int64 `json:"defect"`
	Other       int64 `json:"other"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	itemRepo   repository.ItemRepository
	loanRepo   repository.LoanRepository
	statusRepo repository.StatusRepository
	cache      *cache.Client
	ttl        time.Duration
	logger     *slog.Logger
}

func NewDashboardService(
	itemRepo repository.ItemRepository,
	loanRepo repository.LoanRepository,
	statusRepo repository.StatusRepository,
	cacheClient *cache.Client,
	ttl time.Duration,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		itemRepo:   itemRepo,
		loanRepo:   loanRepo,
		statusRepo: statusRepo,
		cache:      cacheClient,
		ttl:        ttl,
		logger:     logger,
	}
}

const dashboardCacheKey = "dashboard_summary"

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if s.cache != nil {
		var cached DashboardSummary
		if err := s.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, dashboardCacheKey, summary, s.ttl); err != nil {
			s.logger.Warn("failed to cache dashboard summary", "error", err)
		}
	}
	return summary, nil
}

func (s *dashboardService) compute(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.TotalItems, err = s.itemRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.ActiveLoans, err = s.loanRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	latest, err := s.statusRepo.LatestPerItem(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range latest {
		if h.Status == nil {
			summary.Other++
			continue
		}
		switch h.Status.Kind {
		case models.StatusKindAvailable:
			summary.Available++
		case models.StatusKindBorrowed:
			summary.Borrowed++
		case models.StatusKindDefect:
			summary.Defect++
		default:
			summary.Other++
		}
	}

	return summary, nil
}
