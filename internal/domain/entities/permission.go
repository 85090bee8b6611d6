package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPermissionKey = errors.New("permission key must be at least 3 characters")
)

// Chaves de permissão conhecidas pelo sistema.
// Novas chaves podem ser criadas dinamicamente pelos administradores;
// estas constantes existem apenas para os gates internos do próprio admin.
const (
	PermissionBusinessView       = "BUSINESS_VIEW"
	PermissionAccessView         = "ACCESS_VIEW"
	PermissionAccessManage       = "ACCESS_MANAGE"
	PermissionTeamView           = "TEAM_VIEW"
	PermissionTeamManage         = "TEAM_MANAGE"
	PermissionPlanView           = "PLAN_VIEW"
	PermissionPlanManage         = "PLAN_MANAGE"
	PermissionSubscriptionView   = "SUBSCRIPTION_VIEW"
	PermissionSubscriptionManage = "SUBSCRIPTION_MANAGE"
	PermissionSmsReportView      = "SMS_REPORT_VIEW"
)

// Permission representa uma capacidade atômica nomeada (ex: BUSINESS_VIEW).
// A chave é o identificador estável; o label é apenas apresentação.
type Permission struct {
	ID        uint
	Key       string
	Label     string
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade Permission
func (p *Permission) Validate() error {
	if len(strings.TrimSpace(p.Key)) < 3 {
		return ErrInvalidPermissionKey
	}
	return nil
}
