package billing

import "github.com/velorahq/veloracrm/app/models"

func f64(v float64) *float64 { return &v }

// defaultPlans is the built-in catalog seeded by SeedDefaultPlans: three
// hosted subscription tiers and three self-hosted one-time tiers.
var defaultPlans = []PlanInput{
	{
		Name:                "Launch",
		Kind:                models.PlanKindSubscription,
		PriceMonthly:        f64(499.0),
		PriceYearly:         f64(4999.0),
		UserLimit:           3,
		AdditionalUserPrice: f64(199.0),
		Description:         "Perfect for small businesses starting with CRM",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"basic_dashboard", "limited_custom_fields", "mobile_access",
			"email_support", "ssl_security", "vps_hosting", "user_management",
		},
	},
	{
		Name:                "Accelerate",
		Kind:                models.PlanKindSubscription,
		PriceMonthly:        f64(1999.0),
		PriceYearly:         f64(22000.0),
		UserLimit:           12,
		AdditionalUserPrice: f64(199.0),
		Description:         "Advanced CRM for growing teams",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"basic_dashboard", "limited_custom_fields", "mobile_access",
			"email_support", "ssl_security", "vps_hosting",
			"lead_pipeline", "visual_sales_pipeline", "email_sms_notifications",
			"custom_dashboards", "customer_segments", "custom_fields",
			"support_tickets", "role_based_access", "customer_notes",
			"email_sms_integration", "team_chat", "auto_backups",
			"user_management",
		},
	},
	{
		Name:                "Scale",
		Kind:                models.PlanKindSubscription,
		PriceMonthly:        f64(3999.0),
		PriceYearly:         f64(45000.0),
		UserLimit:           30,
		AdditionalUserPrice: f64(149.0),
		Description:         "Enterprise-grade CRM solution",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"basic_dashboard", "limited_custom_fields", "mobile_access",
			"email_support", "ssl_security", "vps_hosting",
			"lead_pipeline", "visual_sales_pipeline", "email_sms_notifications",
			"custom_dashboards", "customer_segments", "custom_fields",
			"support_tickets", "role_based_access", "customer_notes",
			"email_sms_integration", "team_chat", "auto_backups",
			"campaign_management", "custom_lead_stages", "bulk_messaging",
			"advanced_analytics", "file_uploads", "conversation_logs",
			"role_management", "user_management", "activity_timeline",
			"notification_center", "custom_domain",
		},
	},
	{
		Name:         "Essentials",
		Kind:         models.PlanKindSelfHosted,
		PriceOneTime: f64(9999.0),
		UserLimit:    3,
		Description:  "Core CRM features for self-hosted deployment",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"follow_up_reminders", "activity_logs", "admin_salesman_roles",
			"custom_branding", "data_ownership",
		},
	},
	{
		Name:         "Pro Deploy",
		Kind:         models.PlanKindSelfHosted,
		PriceOneTime: f64(22999.0),
		UserLimit:    25,
		Description:  "Professional CRM with advanced features",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"follow_up_reminders", "activity_logs", "admin_salesman_roles",
			"custom_branding", "data_ownership", "role_based_access",
			"support_module", "custom_fields", "file_uploads",
			"enhanced_analytics", "sms_email_notifications", "training_videos",
		},
	},
	{
		Name:         "Enterprise",
		Kind:         models.PlanKindSelfHosted,
		PriceOneTime: f64(33999.0),
		UserLimit:    50,
		Description:  "Enterprise-grade CRM with full customization",
		FeatureKeys: []string{
			"contact_management", "lead_management", "task_tracking",
			"follow_up_reminders", "activity_logs", "admin_salesman_roles",
			"custom_branding", "data_ownership", "role_based_access",
			"support_module", "custom_fields", "file_uploads",
			"enhanced_analytics", "sms_email_notifications", "training_videos",
			"white_labeling", "rest_api", "campaign_management",
			"crm_reports", "role_audit", "data_segmentation",
			"custom_workflows", "lifetime_license", "dedicated_manager",
		},
	},
}

// defaultFeatures is the built-in feature registry seeded by
// SeedDefaultFeatures: four core features and eight premium ones.
var defaultFeatures = []models.Feature{
	{FeatureKey: "contact_management", FeatureName: "Contact Management", Description: "Core contact and lead management features", Category: models.FeatureCategorySales, IsCore: true},
	{FeatureKey: "lead_management", FeatureName: "Lead Management", Description: "Lead tracking and pipeline management", Category: models.FeatureCategorySales, IsCore: true},
	{FeatureKey: "task_tracking", FeatureName: "Task Tracking", Description: "Basic task and follow-up management", Category: models.FeatureCategoryGeneral, IsCore: true},
	{FeatureKey: "basic_dashboard", FeatureName: "Basic Dashboard", Description: "Simple analytics and overview dashboard", Category: models.FeatureCategoryGeneral, IsCore: true},
	{FeatureKey: "lead_pipeline", FeatureName: "Lead Pipeline", Description: "Advanced lead pipeline management", Category: models.FeatureCategorySales},
	{FeatureKey: "visual_sales_pipeline", FeatureName: "Visual Sales Pipeline", Description: "Visual representation of sales stages", Category: models.FeatureCategorySales},
	{FeatureKey: "support_tickets", FeatureName: "Support Tickets", Description: "Customer support ticket system", Category: models.FeatureCategorySupport},
	{FeatureKey: "campaign_management", FeatureName: "Campaign Management", Description: "Marketing campaign management", Category: models.FeatureCategoryMarketing},
	{FeatureKey: "advanced_analytics", FeatureName: "Advanced Analytics", Description: "Comprehensive analytics and reporting", Category: models.FeatureCategoryGeneral},
	{FeatureKey: "custom_workflows", FeatureName: "Custom Workflows", Description: "Customizable business workflows", Category: models.FeatureCategoryGeneral},
	{FeatureKey: "white_labeling", FeatureName: "White Labeling", Description: "Custom branding and white-label options", Category: models.FeatureCategoryGeneral},
	{FeatureKey: "rest_api", FeatureName: "REST API Access", Description: "API access for integrations", Category: models.FeatureCategoryGeneral},
}
