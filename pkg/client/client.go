// Package client is the Go SDK for the PromoBandhu admin API. It keeps
// the signed-in session in a pluggable Storage and mirrors the
// behavior the admin dashboard expects: typed errors per status class,
// client-side pre-flight checks, and an at-most-once session expiry
// callback under concurrent 401/403 responses.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	BaseURL string
	// Storage persists the session; defaults to an in-memory store
	Storage Storage
	// OnSessionExpired runs at most once per session when the server
	// answers 401 or 403 for an authenticated request (e.g. to
	// redirect to the login screen)
	OnSessionExpired func()
	Timeout          time.Duration
}

// Client represents a PromoBandhu admin API client.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	session          *session
	onSessionExpired func()
}

// NewClient creates a new admin API client.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		session:          newSession(config.Storage),
		onSessionExpired: config.OnSessionExpired,
	}
}

// Login authenticates with email and password and stores the session.
// Blank fields fail locally without a network call.
func (c *Client) Login(email, password string) (*UserProfile, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.doPublicRequest("POST", "/admin/login", body, &resp); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) && authErr.StatusCode == http.StatusUnauthorized {
			return nil, &AuthError{StatusCode: authErr.StatusCode, Message: "Invalid email or password"}
		}
		return nil, err
	}

	c.session.save(&resp)
	profile := resp.User
	return &profile, nil
}

// Logout revokes the refresh token server-side and clears the session.
// The local session is cleared even when the server call fails.
func (c *Client) Logout() error {
	refreshToken := c.session.refreshToken()
	c.session.clear()

	if refreshToken == "" {
		return nil
	}
	return c.doPublicRequest("POST", "/admin/logout", map[string]string{"refreshToken": refreshToken}, nil)
}

// GetPermissions retrieves all permissions.
func (c *Client) GetPermissions() ([]Permission, error) {
	var result itemsEnvelope[Permission]
	err := c.doRequest("GET", "/admin/access/permissions", nil, &result)
	return result.Items, err
}

// CreatePermission creates a new permission. An empty key fails
// locally without a network call.
func (c *Client) CreatePermission(req CreatePermissionRequest) (*Permission, error) {
	if len(req.Key) < 3 {
		return nil, &ValidationError{Message: "Permission key must be at least 3 characters"}
	}
	var result Permission
	err := c.doRequest("POST", "/admin/access/permissions", req, &result)
	return &result, err
}

// DeletePermission deletes a permission; every group referencing it
// loses the link.
func (c *Client) DeletePermission(id int) error {
	return c.doRequest("DELETE", fmt.Sprintf("/admin/access/permissions/%d", id), nil, nil)
}

// GetGroups retrieves all groups with their permissions.
func (c *Client) GetGroups() ([]Group, error) {
	var result itemsEnvelope[Group]
	err := c.doRequest("GET", "/admin/access/groups", nil, &result)
	return result.Items, err
}

// CreateGroup creates a new group with an empty permission set. A name
// shorter than two characters fails locally without a network call.
func (c *Client) CreateGroup(req CreateGroupRequest) (*Group, error) {
	if len(req.Name) < 2 {
		return nil, &ValidationError{Message: "Group name must be at least 2 characters"}
	}
	var result Group
	err := c.doRequest("POST", "/admin/access/groups", req, &result)
	return &result, err
}

// UpdateGroup renames a group.
func (c *Client) UpdateGroup(id int, name string) (*Group, error) {
	if len(name) < 2 {
		return nil, &ValidationError{Message: "Group name must be at least 2 characters"}
	}
	var result Group
	err := c.doRequest("PATCH", fmt.Sprintf("/admin/access/groups/%d", id), map[string]string{"name": name}, &result)
	return &result, err
}

// DeleteGroup deletes a group and its links.
func (c *Client) DeleteGroup(id int) error {
	return c.doRequest("DELETE", fmt.Sprintf("/admin/access/groups/%d", id), nil, nil)
}

// SetGroupPermissions replaces the group's permission set with exactly
// the given IDs. Permissions not listed are removed.
func (c *Client) SetGroupPermissions(groupID int, permissionIDs []int) (*Group, error) {
	if permissionIDs == nil {
		permissionIDs = []int{}
	}
	var result Group
	err := c.doRequest("PUT", fmt.Sprintf("/admin/access/groups/%d/permissions", groupID),
		map[string][]int{"permission_ids": permissionIDs}, &result)
	return &result, err
}

// GetJobRoles retrieves all job roles with their groups.
func (c *Client) GetJobRoles() ([]JobRole, error) {
	var result itemsEnvelope[JobRole]
	err := c.doRequest("GET", "/admin/access/job-role/list", nil, &result)
	return result.Items, err
}

// CreateJobRole creates a new job role with an empty group set.
func (c *Client) CreateJobRole(req CreateJobRoleRequest) (*JobRole, error) {
	if len(req.Name) < 2 {
		return nil, &ValidationError{Message: "Job role name must be at least 2 characters"}
	}
	var result JobRole
	err := c.doRequest("POST", "/admin/access/job-role/create", req, &result)
	return &result, err
}

// SetJobRoleGroups replaces the job role's group set with exactly the
// given IDs.
func (c *Client) SetJobRoleGroups(jobRoleID int, groupIDs []int) (*JobRole, error) {
	if groupIDs == nil {
		groupIDs = []int{}
	}
	var result JobRole
	err := c.doRequest("PUT", fmt.Sprintf("/admin/access/job-role/update/%d/groups", jobRoleID),
		map[string][]int{"group_ids": groupIDs}, &result)
	return &result, err
}

// GetTeamMembers retrieves a page of team members. search matches
// email, mobile, or job role name.
func (c *Client) GetTeamMembers(search string, limit, offset int) (*TeamMemberPage, error) {
	path := fmt.Sprintf("/admin/team?search=%s&limit=%d&offset=%d", search, limit, offset)
	var result TeamMemberPage
	err := c.doRequest("GET", path, nil, &result)
	return &result, err
}

// GetTeamMember retrieves a specific team member.
func (c *Client) GetTeamMember(id string) (*TeamMember, error) {
	var result TeamMember
	err := c.doRequest("GET", "/admin/team/"+id, nil, &result)
	return &result, err
}

// CreateTeamMember creates a new team member.
func (c *Client) CreateTeamMember(req CreateTeamMemberRequest) (*TeamMember, error) {
	if req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}
	var result TeamMember
	err := c.doRequest("POST", "/admin/team", req, &result)
	return &result, err
}

// UpdateTeamMember partially updates a team member.
func (c *Client) UpdateTeamMember(id string, req UpdateTeamMemberRequest) (*TeamMember, error) {
	var result TeamMember
	err := c.doRequest("PATCH", "/admin/team/"+id, req, &result)
	return &result, err
}

// DeleteTeamMember removes a team member.
func (c *Client) DeleteTeamMember(id string) error {
	return c.doRequest("DELETE", "/admin/team/"+id, nil, nil)
}

// GetBusinesses retrieves a page of businesses.
func (c *Client) GetBusinesses(page, pageSize int) ([]Business, error) {
	path := fmt.Sprintf("/admin/businesses?page=%d&page_size=%d", page, pageSize)
	var result itemsEnvelope[Business]
	err := c.doRequest("GET", path, nil, &result)
	return result.Items, err
}

// GetBusiness retrieves a specific business.
func (c *Client) GetBusiness(id string) (*Business, error) {
	var result Business
	err := c.doRequest("GET", "/admin/businesses/"+id, nil, &result)
	return &result, err
}

// GetPlans retrieves all billing plans.
func (c *Client) GetPlans() ([]Plan, error) {
	var result itemsEnvelope[Plan]
	err := c.doRequest("GET", "/admin/plans", nil, &result)
	return result.Items, err
}

// GetPlan retrieves a specific plan.
func (c *Client) GetPlan(id string) (*Plan, error) {
	var result Plan
	err := c.doRequest("GET", "/admin/plans/"+id, nil, &result)
	return &result, err
}

// CreatePlan creates a new billing plan.
func (c *Client) CreatePlan(req PlanRequest) (*Plan, error) {
	if req.Name == "" {
		return nil, &ValidationError{Message: "Plan name is required"}
	}
	var result Plan
	err := c.doRequest("POST", "/admin/plans", req, &result)
	return &result, err
}

// UpdatePlan replaces a plan's fields.
func (c *Client) UpdatePlan(id string, req PlanRequest) (*Plan, error) {
	var result Plan
	err := c.doRequest("PUT", "/admin/plans/"+id, req, &result)
	return &result, err
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(id string) error {
	return c.doRequest("DELETE", "/admin/plans/"+id, nil, nil)
}

// GetSubscriptions retrieves subscriptions, optionally filtered by
// business and status (pass "" to skip a filter).
func (c *Client) GetSubscriptions(businessID, status string, page, pageSize int) ([]Subscription, error) {
	path := fmt.Sprintf("/admin/subscriptions?business_id=%s&status=%s&page=%d&page_size=%d",
		businessID, status, page, pageSize)
	var result itemsEnvelope[Subscription]
	err := c.doRequest("GET", path, nil, &result)
	return result.Items, err
}

// GetSubscription retrieves a specific subscription.
func (c *Client) GetSubscription(id string) (*Subscription, error) {
	var result Subscription
	err := c.doRequest("GET", "/admin/subscriptions/"+id, nil, &result)
	return &result, err
}

// CreateSubscription creates a subscription for a business.
func (c *Client) CreateSubscription(req CreateSubscriptionRequest) (*Subscription, error) {
	if req.BusinessID == "" {
		return nil, &ValidationError{Message: "Business is required"}
	}
	if (req.StartDate == nil) != (req.EndDate == nil) {
		return nil, &ValidationError{Message: "Start and end date must be provided together"}
	}
	if req.StartDate != nil && !req.EndDate.After(*req.StartDate) {
		return nil, &ValidationError{Message: "End date must be after start date"}
	}
	var result Subscription
	err := c.doRequest("POST", "/admin/subscriptions", req, &result)
	return &result, err
}

// UpdateSubscription partially updates a subscription.
func (c *Client) UpdateSubscription(id string, req UpdateSubscriptionRequest) (*Subscription, error) {
	var result Subscription
	err := c.doRequest("PUT", "/admin/subscriptions/"+id, req, &result)
	return &result, err
}

// CancelSubscription runs the dedicated cancel transition. When the
// caller already holds the record and it is cancelled, the HTTP call
// is skipped entirely: cancel is a no-op on a terminal subscription.
func (c *Client) CancelSubscription(sub *Subscription) (*CancelSubscriptionResponse, error) {
	if sub.IsCancelled() {
		return &CancelSubscriptionResponse{
			Subscription: *sub,
			Warning:      "Subscription is already cancelled; nothing changed",
		}, nil
	}

	var result CancelSubscriptionResponse
	err := c.doRequest("POST", "/admin/subscriptions/"+sub.ID+"/cancel", nil, &result)
	return &result, err
}

// DeleteSubscription removes a subscription permanently.
func (c *Client) DeleteSubscription(id string) error {
	return c.doRequest("DELETE", "/admin/subscriptions/"+id, nil, nil)
}

// GetSmsUsageByBusiness retrieves accumulated SMS usage per business.
func (c *Client) GetSmsUsageByBusiness() ([]BusinessSmsUsage, error) {
	var result itemsEnvelope[BusinessSmsUsage]
	err := c.doRequest("GET", "/admin/sms/usage/businesses", nil, &result)
	return result.Items, err
}

// GetSmsUsageMonthly retrieves platform-wide monthly SMS usage,
// optionally restricted to a year (0 for all).
func (c *Client) GetSmsUsageMonthly(year int) ([]MonthlySmsUsage, error) {
	path := "/admin/sms/usage/monthly"
	if year > 0 {
		path = fmt.Sprintf("%s?year=%d", path, year)
	}
	var result itemsEnvelope[MonthlySmsUsage]
	err := c.doRequest("GET", path, nil, &result)
	return result.Items, err
}

// itemsEnvelope matches the server's list responses.
type itemsEnvelope[T any] struct {
	Items []T `json:"items"`
}

// doRequest performs an authenticated request. A 401 or 403 latches
// the session as expired: the stored credentials are cleared and
// OnSessionExpired fires at most once even when several requests fail
// concurrently.
func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	token := c.session.accessToken()
	if token == "" {
		return &AuthError{StatusCode: http.StatusUnauthorized, Message: "Not authenticated"}
	}

	err := c.do(method, path, token, body, result)

	var authErr *AuthError
	if errors.As(err, &authErr) &&
		(authErr.StatusCode == http.StatusUnauthorized || authErr.StatusCode == http.StatusForbidden) {
		if c.session.expireOnce() {
			c.session.clear()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
		}
	}
	return err
}

// doPublicRequest performs a request without authentication.
func (c *Client) doPublicRequest(method, path string, body interface{}, result interface{}) error {
	return c.do(method, path, "", body, result)
}

func (c *Client) do(method, path, token string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
