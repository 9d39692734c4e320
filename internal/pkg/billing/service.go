package billing

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/velorahq/veloracrm/app/models"
	"github.com/velorahq/veloracrm/app/repository"
	"gorm.io/gorm"
)

// Service owns the subscription lifecycle: catalog and registry seeding,
// subscribe/cancel transitions, seat-count resync, onboarding and billing
// history. Entitlement reads live in the entitlements package.
type Service struct {
	repos *repository.Repositories
}

// NewService creates a billing service from injected repositories.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// NewServiceFromDB creates a billing service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(repository.NewRepositories(db))
}

// ListActivePlans returns the purchasable catalog in insertion order.
func (s *Service) ListActivePlans(ctx context.Context) ([]models.Plan, error) {
	_ = ctx
	return s.repos.Plan.ListActive()
}

// GetPlan resolves a plan by id, active or not. Inactive plans must still
// resolve so existing subscriptions can be rendered.
func (s *Service) GetPlan(ctx context.Context, planID uint) (*models.Plan, error) {
	_ = ctx
	plan, err := s.repos.Plan.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// CreatePlan adds a plan to the catalog. Plan names are unique with exact
// case; only the pricing fields matching the plan kind are stored.
func (s *Service) CreatePlan(ctx context.Context, in PlanInput) (*models.Plan, error) {
	_ = ctx
	if err := validator.New().Struct(in); err != nil {
		return nil, err
	}
	if !validPlanKind(in.Kind) {
		return nil, errors.New("plan type must be subscription or self_hosted")
	}

	if _, err := s.repos.Plan.GetByName(in.Name); err == nil {
		return nil, ErrPlanNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan := &models.Plan{
		Name:        in.Name,
		Kind:        in.Kind,
		UserLimit:   in.UserLimit,
		Description: in.Description,
		IsActive:    true,
	}
	if in.Kind == models.PlanKindSubscription {
		plan.PriceMonthly = in.PriceMonthly
		plan.PriceYearly = in.PriceYearly
		plan.AdditionalUserPrice = in.AdditionalUserPrice
	} else {
		plan.PriceOneTime = in.PriceOneTime
	}
	for i, key := range in.FeatureKeys {
		plan.Features = append(plan.Features, models.PlanFeature{FeatureKey: key, Position: i})
	}

	if err := s.repos.Plan.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// SeedDefaultPlans installs the built-in catalog. It is a no-op once any
// plan exists, so re-running it never duplicates tiers. Returns the number
// of plans inserted.
func (s *Service) SeedDefaultPlans(ctx context.Context) (int, error) {
	count, err := s.repos.Plan.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, in := range defaultPlans {
		if _, err := s.CreatePlan(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(defaultPlans), nil
}

// ListFeatures returns the full feature registry.
func (s *Service) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	_ = ctx
	return s.repos.Feature.List()
}

// SeedDefaultFeatures installs the built-in feature registry. No-op once any
// feature exists. Returns the number of features inserted.
func (s *Service) SeedDefaultFeatures(ctx context.Context) (int, error) {
	_ = ctx
	count, err := s.repos.Feature.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	features := make([]models.Feature, len(defaultFeatures))
	copy(features, defaultFeatures)
	if err := s.repos.Feature.CreateBatch(features); err != nil {
		return 0, err
	}
	return len(features), nil
}

// Subscribe puts a company on a plan. The plan's user limit is snapshotted
// into the subscription so later plan edits never shrink paid seats.
func (s *Service) Subscribe(ctx context.Context, companyID, planID uint) (*models.Subscription, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	start := dateToday()
	sub := &models.Subscription{
		CompanyID:    companyID,
		PlanID:       plan.ID,
		Status:       models.SubscriptionStatusActive,
		StartDate:    start,
		CurrentUsers: 0,
		MaxUsers:     plan.UserLimit,
		BillingCycle: plan.BillingCycle(),
		AutoRenew:    plan.IsSubscription(),
	}
	if plan.IsSubscription() {
		next := start
		sub.NextBillingDate = &next
	}

	if err := s.repos.Subscription.CreateExclusive(sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveSubscription) {
			return nil, ErrActiveSubscriptionExists
		}
		return nil, err
	}

	// Keep the company's denormalized pointer in sync. A missing company row
	// is tolerated; the subscription itself is already committed.
	if err := s.repos.Company.SetSubscription(companyID, sub.ID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return sub, nil
}

// ActiveSubscription returns the company's current active subscription.
func (s *Service) ActiveSubscription(ctx context.Context, companyID uint) (*models.Subscription, error) {
	_ = ctx
	sub, err := s.repos.Subscription.GetActiveByCompany(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// Cancel marks the company's active subscription cancelled and stops
// auto-renewal. The record is kept for billing history; granted features are
// not revoked here.
func (s *Service) Cancel(ctx context.Context, companyID uint) (*models.Subscription, error) {
	sub, err := s.ActiveSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}

	sub.Status = models.SubscriptionStatusCancelled
	sub.AutoRenew = false
	if err := s.repos.Subscription.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ResyncUserCount refreshes the subscription's advisory seat counter from
// the live user count. A company without any subscription row is a no-op,
// not an error.
func (s *Service) ResyncUserCount(ctx context.Context, companyID uint) (int, error) {
	_ = ctx
	count, err := s.repos.User.CountByCompany(companyID)
	if err != nil {
		return 0, err
	}

	sub, err := s.repos.Subscription.GetByCompany(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return int(count), nil
		}
		return 0, err
	}

	sub.CurrentUsers = int(count)
	if err := s.repos.Subscription.Update(sub); err != nil {
		return 0, err
	}
	return int(count), nil
}

// OnboardCompanyWithPlan creates the company and then best-effort attaches
// the requested plan. A subscription failure never rolls back or fails the
// company creation; the result flags whether the attachment happened.
func (s *Service) OnboardCompanyWithPlan(ctx context.Context, profile CompanyProfile, planID *uint) (*OnboardResult, error) {
	company := &models.Company{
		Name:     profile.Name,
		Size:     profile.Size,
		Industry: stringOrDefault(profile.Industry, "Default Industry"),
		Location: stringOrDefault(profile.Location, "Default Location"),
		CRMType:  normalizeCRMType(profile.CRMType),
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Company.Create(company); err != nil {
		return nil, err
	}

	result := &OnboardResult{Company: company}
	if planID != nil {
		sub, err := s.Subscribe(ctx, company.ID, *planID)
		if err != nil {
			log.Printf("onboarding: could not attach plan %d to company %d: %v", *planID, company.ID, err)
			return result, nil
		}
		result.Subscription = sub
		result.SubscriptionCreated = true
	}
	return result, nil
}

// RecordBilling appends one billing history entry. Records are append-only
// and never mutated afterwards.
func (s *Service) RecordBilling(ctx context.Context, in BillingInput) (*models.BillingRecord, error) {
	_ = ctx
	if err := validator.New().Struct(in); err != nil {
		return nil, err
	}

	record := &models.BillingRecord{
		CompanyID:      in.CompanyID,
		SubscriptionID: in.SubscriptionID,
		Amount:         in.Amount,
		Currency:       stringOrDefault(in.Currency, models.DefaultCurrency),
		BillingDate:    in.BillingDate,
		Status:         in.Status,
		PaymentMethod:  in.PaymentMethod,
		TransactionID:  in.TransactionID,
		InvoiceURL:     in.InvoiceURL,
	}
	if record.BillingDate.IsZero() {
		record.BillingDate = dateToday()
	}
	if record.TransactionID == "" {
		record.TransactionID = newTransactionID()
	}

	if err := s.repos.BillingRecord.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListBillingHistory returns the company's billing records, newest first.
func (s *Service) ListBillingHistory(ctx context.Context, companyID uint) ([]models.BillingRecord, error) {
	_ = ctx
	return s.repos.BillingRecord.ListByCompany(companyID)
}

// dateToday returns the current date with the time component zeroed.
func dateToday() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
