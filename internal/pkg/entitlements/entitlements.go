package entitlements

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/velorahq/veloracrm/app/models"
	"github.com/velorahq/veloracrm/app/repository"
	"gorm.io/gorm"
)

// StatusNoSubscription is reported for companies resolved via the fallback
// entitlement. It is never stored on a subscription row.
const StatusNoSubscription = "no_subscription"

// FallbackPlan describes the entitlement granted to companies that have no
// active subscription: the core feature baseline plus a small seat allowance.
type FallbackPlan struct {
	PlanName  string
	UserLimit int
}

// Defaults is the fallback applied when no subscription (or a corrupted plan
// link) is found. A named value rather than inline literals so operators and
// tests can see and override it.
var Defaults = FallbackPlan{
	PlanName:  "Launch Plan",
	UserLimit: 3,
}

// Entitlement is the materialized view of what a company may use right now.
// Features has set semantics; it is sorted only to keep output deterministic.
type Entitlement struct {
	Features           []string `json:"features"`
	SubscriptionStatus string   `json:"subscription_status"`
	PlanName           string   `json:"plan_name"`
	UserLimit          int      `json:"user_limit"`
	CurrentUsers       int      `json:"current_users"`
}

// HasFeature reports whether the entitlement grants the given feature key.
func (e *Entitlement) HasFeature(key string) bool {
	for _, k := range e.Features {
		if k == key {
			return true
		}
	}
	return false
}

// Resolver computes entitlements. Resolution is read-only and total: it
// never writes, and for any existing company it returns a usable view even
// when the subscription's plan link is broken.
type Resolver struct {
	repos *repository.Repositories
}

// NewResolver creates a resolver from injected repositories.
func NewResolver(repos *repository.Repositories) *Resolver {
	return &Resolver{repos: repos}
}

// NewResolverFromDB creates a resolver from a GORM DB handle.
func NewResolverFromDB(db *gorm.DB) *Resolver {
	return NewResolver(repository.NewRepositories(db))
}

// Resolve materializes the entitlement view for a company. The seat usage is
// always the live user count; the advisory Subscription.CurrentUsers cache
// is never consulted here.
func (r *Resolver) Resolve(ctx context.Context, companyID uint) (*Entitlement, error) {
	_ = ctx
	count, err := r.repos.User.CountByCompany(companyID)
	if err != nil {
		return nil, err
	}

	registry, err := r.repos.Feature.List()
	if err != nil {
		return nil, err
	}

	// The latest subscription of any status. A cancelled subscription keeps
	// its grants until it is replaced; cancellation stops billing, not
	// currently-granted features. Callers gate on SubscriptionStatus.
	sub, err := r.repos.Subscription.GetByCompany(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallbackView(registry, int(count)), nil
		}
		return nil, err
	}

	plan, err := r.repos.Plan.GetByID(sub.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling plan reference. Degrade to the core-only fallback
			// instead of failing the request path; the log line is the
			// monitoring signal for the integrity problem.
			log.Printf("entitlements: subscription %d (company %d) references missing plan %d", sub.ID, companyID, sub.PlanID)
			return fallbackView(registry, int(count)), nil
		}
		return nil, err
	}

	known := make(map[string]bool, len(registry))
	granted := make(map[string]struct{}, len(registry))
	for _, f := range registry {
		known[f.FeatureKey] = true
		// Core features are the baseline; plan grants add to them.
		if f.IsCore {
			granted[f.FeatureKey] = struct{}{}
		}
	}
	for _, key := range plan.FeatureKeys() {
		if !known[key] {
			log.Printf("entitlements: plan %q grants unknown feature key %q", plan.Name, key)
			continue
		}
		granted[key] = struct{}{}
	}

	return &Entitlement{
		Features:           sortedKeys(granted),
		SubscriptionStatus: sub.Status,
		PlanName:           plan.Name,
		UserLimit:          sub.MaxUsers,
		CurrentUsers:       int(count),
	}, nil
}

func fallbackView(registry []models.Feature, currentUsers int) *Entitlement {
	core := make(map[string]struct{})
	for _, f := range registry {
		if f.IsCore {
			core[f.FeatureKey] = struct{}{}
		}
	}
	return &Entitlement{
		Features:           sortedKeys(core),
		SubscriptionStatus: StatusNoSubscription,
		PlanName:           Defaults.PlanName,
		UserLimit:          Defaults.UserLimit,
		CurrentUsers:       currentUsers,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
