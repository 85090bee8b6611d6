package postgres

import "gorm.io/datatypes"

// PermissionModel é o model GORM para permissões
type PermissionModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Key       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Label     string `gorm:"type:varchar(255)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (PermissionModel) TableName() string {
	return "permissions"
}

// GroupModel é o model GORM para grupos de permissões
type GroupModel struct {
	ID          uint              `gorm:"primaryKey;autoIncrement"`
	Name        string            `gorm:"type:varchar(255);not null"`
	Permissions []PermissionModel `gorm:"many2many:group_permissions;joinForeignKey:group_id;joinReferences:permission_id;constraint:OnDelete:CASCADE"`
	CreatedAt   int64             `gorm:"autoCreateTime"`
	UpdatedAt   int64             `gorm:"autoUpdateTime"`
}

func (GroupModel) TableName() string {
	return "groups"
}

// JobRoleModel é o model GORM para job roles
type JobRoleModel struct {
	ID        uint         `gorm:"primaryKey;autoIncrement"`
	Name      string       `gorm:"type:varchar(255);not null"`
	Groups    []GroupModel `gorm:"many2many:job_role_groups;joinForeignKey:job_role_id;joinReferences:group_id;constraint:OnDelete:CASCADE"`
	CreatedAt int64        `gorm:"autoCreateTime"`
	UpdatedAt int64        `gorm:"autoUpdateTime"`
}

func (JobRoleModel) TableName() string {
	return "job_roles"
}

// TeamMemberModel é o model GORM para membros da equipe
type TeamMemberModel struct {
	ID           string       `gorm:"type:uuid;primary_key"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	Mobile       *string      `gorm:"type:varchar(20)"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	JobRoleID    uint         `gorm:"not null;index"`
	JobRole      JobRoleModel `gorm:"foreignKey:JobRoleID"`
	ExtraGroups  []GroupModel `gorm:"many2many:team_member_groups;joinForeignKey:team_member_id;joinReferences:group_id;constraint:OnDelete:CASCADE"`
	CreatedAt    int64        `gorm:"autoCreateTime;index"`
	UpdatedAt    int64        `gorm:"autoUpdateTime"`
	DeletedAt    *int64       `gorm:"index"` // Soft delete
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

// BusinessModel é o model GORM para negócios
type BusinessModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Name      string `gorm:"type:varchar(500);not null"`
	City      string `gorm:"type:varchar(255)"`
	Status    string `gorm:"type:varchar(50);not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (BusinessModel) TableName() string {
	return "businesses"
}

// PlanModel é o model GORM para planos de cobrança
type PlanModel struct {
	ID             string         `gorm:"type:uuid;primary_key"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(50);not null;index"`
	BillingType    string         `gorm:"type:varchar(50);not null"`
	BillingCycle   *string        `gorm:"type:varchar(50)"`
	Amount         float64        `gorm:"not null"`
	DiscountAmount float64        `gorm:"not null;default:0"`
	SMSLimit       int            `gorm:"column:sms_limit;not null;default:0"`
	OfferLimit     int            `gorm:"not null;default:0"`
	IsPopular      bool           `gorm:"not null;default:false"`
	SortOrder      int            `gorm:"not null;default:0;index"`
	Features       datatypes.JSON `gorm:"type:jsonb"`
	AllowTopups    bool           `gorm:"not null;default:false"`
	TopupOptions   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      int64          `gorm:"autoCreateTime"`
	UpdatedAt      int64          `gorm:"autoUpdateTime"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// SubscriptionModel é o model GORM para assinaturas
type SubscriptionModel struct {
	ID               string        `gorm:"type:uuid;primary_key"`
	BusinessID       string        `gorm:"type:uuid;not null;index"`
	Business         BusinessModel `gorm:"foreignKey:BusinessID"`
	Plan             string        `gorm:"type:varchar(50);not null"`
	Status           string        `gorm:"type:varchar(50);not null;index"`
	TrialStartsAt    *int64
	TrialEndsAt      *int64
	CurrentPeriodEnd *int64
	NextRenewalAt    *int64
	CancelledAt      *int64
	CreatedAt        int64 `gorm:"autoCreateTime;index"`
	UpdatedAt        int64 `gorm:"autoUpdateTime"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SmsUsageModel é o model GORM para consumo mensal de SMS
type SmsUsageModel struct {
	ID         uint          `gorm:"primaryKey;autoIncrement"`
	BusinessID string        `gorm:"type:uuid;not null;uniqueIndex:idx_sms_usage_business_month"`
	Business   BusinessModel `gorm:"foreignKey:BusinessID"`
	Month      string        `gorm:"type:varchar(7);not null;uniqueIndex:idx_sms_usage_business_month;index"`
	Sent       int           `gorm:"not null;default:0"`
	Delivered  int           `gorm:"not null;default:0"`
	Failed     int           `gorm:"not null;default:0"`
}

func (SmsUsageModel) TableName() string {
	return "sms_usage"
}
