package billing

import (
	"github.com/velorahq/veloracrm/app/models"
	"github.com/velorahq/veloracrm/app/repository"
	"gorm.io/gorm"
)

// In-memory repositories for service tests. They mirror the GORM
// implementations' error contract: gorm.ErrRecordNotFound on misses and
// repository.ErrDuplicateActiveSubscription on a second active subscription.

type fakePlanRepo struct {
	nextID uint
	plans  map[uint]*models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{nextID: 1, plans: make(map[uint]*models.Plan)}
}

func (r *fakePlanRepo) Create(plan *models.Plan) error {
	plan.ID = r.nextID
	r.nextID++
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByID(id uint) (*models.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) GetByName(name string) (*models.Plan, error) {
	for _, p := range r.plans {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePlanRepo) ListActive() ([]models.Plan, error) {
	var out []models.Plan
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.plans[id]; ok && p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Count() (int64, error) {
	return int64(len(r.plans)), nil
}

func (r *fakePlanRepo) Update(plan *models.Plan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

type fakeFeatureRepo struct {
	features []models.Feature
}

func (r *fakeFeatureRepo) CreateBatch(features []models.Feature) error {
	r.features = append(r.features, features...)
	return nil
}

func (r *fakeFeatureRepo) List() ([]models.Feature, error) {
	out := make([]models.Feature, len(r.features))
	copy(out, r.features)
	return out, nil
}

func (r *fakeFeatureRepo) Count() (int64, error) {
	return int64(len(r.features)), nil
}

type fakeSubscriptionRepo struct {
	nextID uint
	subs   []*models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{nextID: 1}
}

func (r *fakeSubscriptionRepo) CreateExclusive(sub *models.Subscription) error {
	for _, s := range r.subs {
		if s.CompanyID == sub.CompanyID && s.Status == models.SubscriptionStatusActive {
			return repository.ErrDuplicateActiveSubscription
		}
	}
	sub.ID = r.nextID
	r.nextID++
	cp := *sub
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *fakeSubscriptionRepo) GetActiveByCompany(companyID uint) (*models.Subscription, error) {
	for _, s := range r.subs {
		if s.CompanyID == companyID && s.Status == models.SubscriptionStatusActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubscriptionRepo) GetByCompany(companyID uint) (*models.Subscription, error) {
	for i := len(r.subs) - 1; i >= 0; i-- {
		if r.subs[i].CompanyID == companyID {
			cp := *r.subs[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubscriptionRepo) GetByID(id uint) (*models.Subscription, error) {
	for _, s := range r.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubscriptionRepo) Update(sub *models.Subscription) error {
	for i, s := range r.subs {
		if s.ID == sub.ID {
			cp := *sub
			r.subs[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCompanyRepo struct {
	nextID    uint
	companies map[uint]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{nextID: 1, companies: make(map[uint]*models.Company)}
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	company.ID = r.nextID
	r.nextID++
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id uint) (*models.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) SetSubscription(companyID, subscriptionID uint) error {
	c, ok := r.companies[companyID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.SubscriptionID = &subscriptionID
	return nil
}

type fakeBillingRecordRepo struct {
	nextID  uint
	records []models.BillingRecord
}

func newFakeBillingRecordRepo() *fakeBillingRecordRepo {
	return &fakeBillingRecordRepo{nextID: 1}
}

func (r *fakeBillingRecordRepo) Create(record *models.BillingRecord) error {
	record.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeBillingRecordRepo) ListByCompany(companyID uint) ([]models.BillingRecord, error) {
	var out []models.BillingRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].CompanyID == companyID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	nextID uint
	users  []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id uint) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(offset, limit int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByCompany(companyID uint) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func newTestRepos() *repository.Repositories {
	return &repository.Repositories{
		Plan:          newFakePlanRepo(),
		Feature:       &fakeFeatureRepo{},
		Subscription:  newFakeSubscriptionRepo(),
		Company:       newFakeCompanyRepo(),
		BillingRecord: newFakeBillingRecordRepo(),
		User:          newFakeUserRepo(),
	}
}
