package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")

	ErrPermissionNotFound   = errors.New("error.permission_not_found")
	ErrPermissionKeyExists  = errors.New("error.permission_key_exists")
	ErrGroupNotFound        = errors.New("error.group_not_found")
	ErrJobRoleNotFound      = errors.New("error.job_role_not_found")
	ErrTeamMemberNotFound   = errors.New("error.team_member_not_found")
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrBusinessNotFound     = errors.New("error.business_not_found")
	ErrPlanNotFound         = errors.New("error.plan_not_found")
	ErrSubscriptionNotFound = errors.New("error.subscription_not_found")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
