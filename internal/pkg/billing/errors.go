package billing

import "errors"

// Error taxonomy surfaced by the lifecycle service. Not-found and conflict
// conditions are distinct so callers can map them to actionable responses;
// anything else is an unexpected storage failure and propagates unchanged.
var (
	ErrPlanNotFound             = errors.New("plan not found")
	ErrPlanInactive             = errors.New("plan is no longer available for new subscriptions")
	ErrPlanNameTaken            = errors.New("plan name already exists")
	ErrSubscriptionNotFound     = errors.New("no active subscription found")
	ErrCompanyNotFound          = errors.New("company not found")
	ErrActiveSubscriptionExists = errors.New("company already has an active subscription")
)
