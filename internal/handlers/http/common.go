package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/valueobjects"
	"github.com/promobandhu/admin-backend/internal/handlers/dto"
)

// notFoundResources mapeia sentinelas de "não encontrado" para o nome
// do recurso usado na mensagem RFC 7807
var notFoundResources = map[error]string{
	errors.ErrPermissionNotFound:   "Permission",
	errors.ErrGroupNotFound:        "Group",
	errors.ErrJobRoleNotFound:      "Job role",
	errors.ErrTeamMemberNotFound:   "Team member",
	errors.ErrBusinessNotFound:     "Business",
	errors.ErrPlanNotFound:         "Plan",
	errors.ErrSubscriptionNotFound: "Subscription",
}

// domainValidationErrors são violações de regra de negócio tratadas
// como 400, com a mensagem da sentinela no corpo
var domainValidationErrors = []error{
	entities.ErrInvalidPermissionKey,
	entities.ErrInvalidGroupName,
	entities.ErrInvalidJobRoleName,
	entities.ErrTeamMemberEmailRequired,
	entities.ErrTeamMemberJobRoleRequired,
	entities.ErrInvalidPlanTier,
	entities.ErrInvalidSubscriptionStatus,
	entities.ErrSubscriptionDateOrder,
	entities.ErrSubscriptionBusinessRequired,
	entities.ErrPlanNameRequired,
	entities.ErrInvalidPlanStatus,
	entities.ErrInvalidBillingType,
	entities.ErrBillingCycleRequired,
	entities.ErrBillingCycleNotAllowed,
	entities.ErrInvalidBillingCycle,
	entities.ErrNegativePlanAmount,
	entities.ErrTopupOptionsNotAllowed,
	entities.ErrInvalidTopupOption,
	valueobjects.ErrInvalidEmail,
	valueobjects.ErrInvalidMobile,
}

// respondError traduz erros de domínio para respostas RFC 7807.
// Erros desconhecidos viram 500 genérico — o detalhe fica só no log.
func respondError(c *gin.Context, err error) {
	for sentinel, resource := range notFoundResources {
		if errs.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, resource))
			return
		}
	}

	for _, sentinel := range domainValidationErrors {
		if errs.Is(err, sentinel) {
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Message: sentinel.Error()},
			})
			c.JSON(http.StatusBadRequest, response)
			return
		}
	}

	switch {
	case errs.Is(err, errors.ErrInvalidCredentials):
		response := dto.NewErrorResponseI18n(
			c,
			errors.ProblemTypeUnauthorized,
			"error.unauthorized.title",
			"error.invalid_credentials",
			http.StatusUnauthorized,
		)
		c.JSON(http.StatusUnauthorized, response)
	case errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrPermissionKeyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.permission_key_exists"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError trata erros de binding/validação do Gin
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(err)))
}
