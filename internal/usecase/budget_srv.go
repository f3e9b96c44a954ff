package usecase

import (
	"context"
	"fmt"

	"event-planner/internal/data/entity"
	"event-planner/internal/data/repository"
	"event-planner/internal/dto/request"
	"event-planner/internal/dto/response"
	"event-planner/internal/engine/budget"
	"event-planner/internal/engine/pricing"
	"event-planner/pkg/metrics"

	"go.uber.org/zap"
)

type BudgetService interface {
	Breakdown(ctx context.Context, req *request.BreakdownRequest) (*entity.BudgetBreakdown, error)
	Estimate(ctx context.Context, req *request.EstimateRequest) (*budget.Estimate, error)
	Compare(ctx context.Context, req *request.CompareRequest) (*budget.IndustryComparison, error)
	QuoteVendor(ctx context.Context, vendorID string, req *request.QuoteRequest) (*response.QuoteResponse, error)
	SaveVendor(ctx context.Context, vendorID string, req *request.SaveVendorRequest) (*entity.Vendor, error)
}

type budgetService struct {
	vendors repository.VendorRepository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewBudgetService(vendors repository.VendorRepository, m *metrics.Metrics, log *zap.Logger) BudgetService {
	return &budgetService{
		vendors: vendors,
		metrics: m,
		log:     log.With(zap.String("service", "budget")),
	}
}

func (s *budgetService) Breakdown(_ context.Context, req *request.BreakdownRequest) (*entity.BudgetBreakdown, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	breakdown := budget.GenerateBudgetBreakdown(
		entity.EventType(req.EventType),
		req.AttendeeCount,
		toRequirements(req.Requirements),
		toBreakdownOptions(req.Options),
	)

	s.metrics.BudgetEstimates.WithLabelValues(budget.StrategyPlanned).Inc()
	return breakdown, nil
}

func (s *budgetService) Estimate(_ context.Context, req *request.EstimateRequest) (*budget.Estimate, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	in := budget.EstimateRequest{
		EventType:     entity.EventType(req.EventType),
		AttendeeCount: req.AttendeeCount,
		Requirements:  toRequirements(req.Requirements),
		Options:       toBreakdownOptions(req.Options),
		VenueSize:     budget.VenueSize(req.VenueSize),
		DurationHours: req.DurationHours,
		Amenities:     toAmenities(req.Amenities),
	}

	strategy := budget.SelectStrategy(in)
	if req.Strategy != "" {
		var err error
		if strategy, err = budget.StrategyByName(req.Strategy); err != nil {
			return nil, err
		}
	}

	estimate := strategy.Estimate(in)
	s.metrics.BudgetEstimates.WithLabelValues(strategy.Name()).Inc()

	s.log.Debug("Budget estimated",
		zap.String("strategy", strategy.Name()),
		zap.String("event_type", req.EventType),
		zap.Float64("total", estimate.Total),
	)

	return &estimate, nil
}

func (s *budgetService) Compare(_ context.Context, req *request.CompareRequest) (*budget.IndustryComparison, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	comparison := budget.CompareBudgetToIndustryAverage(entity.EventType(req.EventType), req.AttendeeCount, req.Budget)
	return &comparison, nil
}

func (s *budgetService) QuoteVendor(ctx context.Context, vendorID string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s: %w", vendorID, ErrVendorNotFound)
	}

	cost, err := pricing.CalculateVendorBookingCost(vendor, req.PackageID, req.Quantity, req.Hours, !req.ExcludeFees)
	if err != nil {
		return nil, err
	}

	return &response.QuoteResponse{
		VendorID:  vendorID,
		PackageID: req.PackageID,
		Quantity:  req.Quantity,
		Hours:     req.Hours,
		Cost:      *cost,
	}, nil
}

func (s *budgetService) SaveVendor(ctx context.Context, vendorID string, req *request.SaveVendorRequest) (*entity.Vendor, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vendor := toVendor(vendorID, req)
	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, fmt.Errorf("save vendor: %w", err)
	}

	s.log.Info("Vendor saved", zap.String("vendor_id", vendorID), zap.Int("packages", len(vendor.Packages)))
	return vendor, nil
}
