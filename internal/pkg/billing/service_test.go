package billing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velorahq/veloracrm/app/models"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(newTestRepos())
	_, err := svc.SeedDefaultPlans(context.Background())
	require.NoError(t, err)
	_, err = svc.SeedDefaultFeatures(context.Background())
	require.NoError(t, err)
	return svc
}

func createCompany(t *testing.T, svc *Service) *models.Company {
	t.Helper()
	result, err := svc.OnboardCompanyWithPlan(context.Background(), CompanyProfile{Name: "Acme Traders"}, nil)
	require.NoError(t, err)
	return result.Company
}

func TestSeedDefaultPlansIsIdempotent(t *testing.T) {
	svc := NewService(newTestRepos())
	ctx := context.Background()

	inserted, err := svc.SeedDefaultPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, inserted)

	inserted, err = svc.SeedDefaultPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 6)
}

func TestSeedDefaultFeaturesIsIdempotent(t *testing.T) {
	svc := NewService(newTestRepos())
	ctx := context.Background()

	inserted, err := svc.SeedDefaultFeatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, inserted)

	inserted, err = svc.SeedDefaultFeatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestCreatePlanRejectsDuplicateName(t *testing.T) {
	svc := seededService(t)

	_, err := svc.CreatePlan(context.Background(), PlanInput{
		Name:         "Launch",
		Kind:         models.PlanKindSubscription,
		PriceMonthly: f64(100),
		UserLimit:    5,
	})
	assert.ErrorIs(t, err, ErrPlanNameTaken)
}

func TestCreatePlanStoresPricingByKind(t *testing.T) {
	svc := NewService(newTestRepos())
	ctx := context.Background()

	sub, err := svc.CreatePlan(ctx, PlanInput{
		Name:         "Hosted",
		Kind:         models.PlanKindSubscription,
		PriceMonthly: f64(100),
		PriceYearly:  f64(1000),
		PriceOneTime: f64(5000),
		UserLimit:    5,
	})
	require.NoError(t, err)
	assert.NotNil(t, sub.PriceMonthly)
	assert.Nil(t, sub.PriceOneTime)

	selfHosted, err := svc.CreatePlan(ctx, PlanInput{
		Name:         "On-Prem",
		Kind:         models.PlanKindSelfHosted,
		PriceMonthly: f64(100),
		PriceOneTime: f64(5000),
		UserLimit:    10,
	})
	require.NoError(t, err)
	assert.Nil(t, selfHosted.PriceMonthly)
	assert.NotNil(t, selfHosted.PriceOneTime)
}

func TestGetPlanNotFound(t *testing.T) {
	svc := NewService(newTestRepos())
	_, err := svc.GetPlan(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubscribeSnapshotsUserLimit(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	var launch *models.Plan
	for i := range plans {
		if plans[i].Name == "Launch" {
			launch = &plans[i]
		}
	}
	require.NotNil(t, launch)

	sub, err := svc.Subscribe(ctx, company.ID, launch.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, 3, sub.MaxUsers)
	assert.Equal(t, models.BillingCycleMonthly, sub.BillingCycle)
	assert.True(t, sub.AutoRenew)
	require.NotNil(t, sub.NextBillingDate)

	// Shrinking the plan later must not touch already-sold seats.
	launch.UserLimit = 1
	require.NoError(t, svc.repos.Plan.Update(launch))

	stored, err := svc.ActiveSubscription(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.MaxUsers)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	svc := seededService(t)
	company := createCompany(t, svc)

	_, err := svc.Subscribe(context.Background(), company.ID, 999)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubscribeInactivePlan(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	retired := plans[0]
	retired.IsActive = false
	require.NoError(t, svc.repos.Plan.Update(&retired))

	_, err = svc.Subscribe(ctx, company.ID, retired.ID)
	assert.ErrorIs(t, err, ErrPlanInactive)
}

func TestSubscribeRejectsSecondActiveSubscription(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)

	first, err := svc.Subscribe(ctx, company.ID, plans[0].ID)
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, company.ID, plans[1].ID)
	assert.ErrorIs(t, err, ErrActiveSubscriptionExists)

	// The failed call must not have touched the existing subscription.
	kept, err := svc.ActiveSubscription(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
	assert.Equal(t, first.PlanID, kept.PlanID)
}

func TestSubscribeAfterCancelCreatesNewSubscription(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)

	first, err := svc.Subscribe(ctx, company.ID, plans[0].ID)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, company.ID)
	require.NoError(t, err)

	second, err := svc.Subscribe(ctx, company.ID, plans[1].ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCancelStopsAutoRenewAndKeepsRecord(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, company.ID, plans[0].ID)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.AutoRenew)

	// The row survives as history, it just is not active anymore.
	_, err = svc.ActiveSubscription(ctx, company.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	kept, err := svc.repos.Subscription.GetByID(cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusCancelled, kept.Status)
}

func TestCancelWithoutActiveSubscription(t *testing.T) {
	svc := seededService(t)
	company := createCompany(t, svc)

	_, err := svc.Cancel(context.Background(), company.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestResyncUserCountWithoutSubscriptionIsNoOp(t *testing.T) {
	svc := seededService(t)
	company := createCompany(t, svc)

	count, err := svc.ResyncUserCount(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestResyncUserCountRefreshesAdvisoryCache(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()
	company := createCompany(t, svc)

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, company.ID, plans[0].ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		id := company.ID
		require.NoError(t, svc.repos.User.Create(&models.User{Name: "Seat", Email: string(rune('a'+i)) + "@acme.test", Password: "x", CompanyID: &id}))
	}

	count, err := svc.ResyncUserCount(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	sub, err := svc.ActiveSubscription(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.CurrentUsers)
}

func TestOnboardCompanyAppliesProfileDefaults(t *testing.T) {
	svc := seededService(t)

	result, err := svc.OnboardCompanyWithPlan(context.Background(), CompanyProfile{
		Name:    "Nimbus Retail",
		CRMType: "Sales CRM",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Company)
	assert.False(t, result.SubscriptionCreated)
	assert.Equal(t, "sales_crm", result.Company.CRMType)
	assert.Equal(t, "Default Industry", result.Company.Industry)
	assert.Equal(t, "Default Location", result.Company.Location)
}

func TestOnboardCompanySurvivesBadPlan(t *testing.T) {
	svc := seededService(t)

	badPlan := uint(999)
	result, err := svc.OnboardCompanyWithPlan(context.Background(), CompanyProfile{Name: "Orbit Labs"}, &badPlan)
	require.NoError(t, err)
	require.NotNil(t, result.Company)
	assert.False(t, result.SubscriptionCreated)
	assert.Nil(t, result.Subscription)
}

func TestOnboardCompanyWithPlanAttachesSubscription(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	plans, err := svc.ListActivePlans(ctx)
	require.NoError(t, err)
	planID := plans[0].ID

	result, err := svc.OnboardCompanyWithPlan(ctx, CompanyProfile{Name: "Vertex Goods"}, &planID)
	require.NoError(t, err)
	assert.True(t, result.SubscriptionCreated)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, result.Company.ID, result.Subscription.CompanyID)

	company, err := svc.repos.Company.GetByID(result.Company.ID)
	require.NoError(t, err)
	require.NotNil(t, company.SubscriptionID)
	assert.Equal(t, result.Subscription.ID, *company.SubscriptionID)
}

func TestRecordBillingAppliesDefaults(t *testing.T) {
	svc := seededService(t)

	record, err := svc.RecordBilling(context.Background(), BillingInput{
		CompanyID:      1,
		SubscriptionID: 1,
		Amount:         499.0,
		Status:         models.BillingRecordStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, record.Currency)
	assert.False(t, record.BillingDate.IsZero())
	assert.True(t, strings.HasPrefix(record.TransactionID, "txn_"))
}

func TestListBillingHistoryNewestFirst(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	for _, amount := range []float64{100, 200, 300} {
		_, err := svc.RecordBilling(ctx, BillingInput{
			CompanyID:      7,
			SubscriptionID: 1,
			Amount:         amount,
			Status:         models.BillingRecordStatusPaid,
		})
		require.NoError(t, err)
	}

	records, err := svc.ListBillingHistory(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 300.0, records[0].Amount)
	assert.Equal(t, 100.0, records[2].Amount)
}
