package billing

import (
	"strings"

	"github.com/velorahq/veloracrm/app/models"
)

func validPlanKind(kind string) bool {
	switch kind {
	case models.PlanKindSubscription, models.PlanKindSelfHosted:
		return true
	default:
		return false
	}
}

// normalizeCRMType turns a display label like "Sales CRM" into the stored
// token "sales_crm".
func normalizeCRMType(crmType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(crmType)), " ", "_")
}

func stringOrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
