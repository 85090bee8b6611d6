package client

import "time"

// UserProfile is the signed-in admin profile cached alongside the tokens.
type UserProfile struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Mobile *string `json:"mobile,omitempty"`
	Role   string  `json:"role"`
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	User         UserProfile `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// Permission is an atomic named capability.
type Permission struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// Group is a named bundle of permissions.
type Group struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// JobRole is a named bundle of groups assignable to team members.
type JobRole struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
}

// TeamMember is an admin staff account.
type TeamMember struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	Mobile               *string  `json:"mobile,omitempty"`
	JobRole              JobRole  `json:"job_role"`
	ExtraGroups          []Group  `json:"extra_groups"`
	EffectivePermissions []string `json:"effective_permissions"`
}

// TeamMemberPage is a paginated team listing.
type TeamMemberPage struct {
	Items []TeamMember `json:"items"`
	Total int64        `json:"total"`
}

// CreatePermissionRequest creates a new permission.
type CreatePermissionRequest struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// CreateGroupRequest creates a new, empty group.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// CreateJobRoleRequest creates a new, empty job role.
type CreateJobRoleRequest struct {
	Name string `json:"name"`
}

// CreateTeamMemberRequest creates a new team member.
type CreateTeamMemberRequest struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Mobile        *string `json:"mobile,omitempty"`
	JobRoleID     int     `json:"job_role_id"`
	ExtraGroupIDs []int   `json:"extra_group_ids,omitempty"`
}

// UpdateTeamMemberRequest partially updates a team member. A nil or
// blank password leaves the stored password unchanged.
type UpdateTeamMemberRequest struct {
	Email         *string `json:"email,omitempty"`
	Password      *string `json:"password,omitempty"`
	Mobile        *string `json:"mobile,omitempty"`
	JobRoleID     *int    `json:"job_role_id,omitempty"`
	ExtraGroupIDs []int   `json:"extra_group_ids,omitempty"`
}

// PlanBenefits describes the entitlements of a subscription tier.
type PlanBenefits struct {
	Offers   int      `json:"offers"`
	SMS      int      `json:"sms"`
	Features []string `json:"features"`
}

// Subscription is a business's live subscription record.
type Subscription struct {
	ID                 string       `json:"id"`
	BusinessID         string       `json:"business_id"`
	Plan               string       `json:"plan"`
	PlanLabel          string       `json:"plan_label"`
	Status             string       `json:"status"`
	StatusLabel        string       `json:"status_label"`
	TrialStartsAt      *time.Time   `json:"trial_starts_at,omitempty"`
	TrialEndsAt        *time.Time   `json:"trial_ends_at,omitempty"`
	TrialDaysRemaining *int         `json:"trial_days_remaining,omitempty"`
	CurrentPeriodEnd   *time.Time   `json:"current_period_end,omitempty"`
	NextRenewalAt      *time.Time   `json:"next_renewal_at,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	Benefits           PlanBenefits `json:"benefits"`
}

// IsCancelled reports whether the subscription reached its terminal state.
func (s *Subscription) IsCancelled() bool {
	return s.Status == "cancelled"
}

// CancelSubscriptionResponse wraps the cancelled subscription with an
// optional warning for repeated cancellations.
type CancelSubscriptionResponse struct {
	Subscription Subscription `json:"subscription"`
	Warning      string       `json:"warning,omitempty"`
}

// CreateSubscriptionRequest creates a subscription. Either both
// StartDate and EndDate are set, or TrialDays drives the trial window.
type CreateSubscriptionRequest struct {
	BusinessID string     `json:"business_id"`
	Plan       string     `json:"plan"`
	Status     string     `json:"status"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	TrialDays  *int       `json:"trial_days,omitempty"`
}

// UpdateSubscriptionRequest partially updates a subscription. Setting
// Status here is a direct edit and does not run the cancel transition.
type UpdateSubscriptionRequest struct {
	Plan             *string    `json:"plan,omitempty"`
	Status           *string    `json:"status,omitempty"`
	TrialStartsAt    *time.Time `json:"trial_starts_at,omitempty"`
	TrialEndsAt      *time.Time `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	NextRenewalAt    *time.Time `json:"next_renewal_at,omitempty"`
}

// TopupOption is an SMS top-up package sold with a plan.
type TopupOption struct {
	Amount float64 `json:"amount"`
	SMS    int     `json:"sms"`
}

// Plan is a sellable billing template, distinct from Subscription.
type Plan struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Status         string        `json:"status"`
	BillingType    string        `json:"billing_type"`
	BillingCycle   *string       `json:"billing_cycle,omitempty"`
	Amount         float64       `json:"amount"`
	DiscountAmount float64       `json:"discount_amount"`
	SMSLimit       int           `json:"sms_limit"`
	OfferLimit     int           `json:"offer_limit"`
	IsPopular      bool          `json:"is_popular"`
	SortOrder      int           `json:"sort_order"`
	Features       []string      `json:"features,omitempty"`
	AllowTopups    bool          `json:"allow_topups"`
	TopupOptions   []TopupOption `json:"topup_options,omitempty"`
}

// PlanRequest creates or replaces a plan.
type PlanRequest struct {
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Status         string        `json:"status"`
	BillingType    string        `json:"billing_type"`
	BillingCycle   *string       `json:"billing_cycle,omitempty"`
	Amount         float64       `json:"amount"`
	DiscountAmount float64       `json:"discount_amount"`
	SMSLimit       int           `json:"sms_limit"`
	OfferLimit     int           `json:"offer_limit"`
	IsPopular      bool          `json:"is_popular"`
	SortOrder      int           `json:"sort_order"`
	Features       []string      `json:"features,omitempty"`
	AllowTopups    bool          `json:"allow_topups"`
	TopupOptions   []TopupOption `json:"topup_options,omitempty"`
}

// Business is a local business with subscriptions and SMS usage.
type Business struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city,omitempty"`
	Status string `json:"status"`
}

// BusinessSmsUsage is the accumulated SMS usage of one business.
type BusinessSmsUsage struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Sent         int    `json:"sent"`
	Delivered    int    `json:"delivered"`
	Failed       int    `json:"failed"`
}

// MonthlySmsUsage is the platform-wide SMS usage of one month (2006-01).
type MonthlySmsUsage struct {
	Month     string `json:"month"`
	Sent      int    `json:"sent"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
}
