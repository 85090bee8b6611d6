package entities

import (
	"reflect"
	"testing"
)

func groupWith(id uint, name string, keys ...string) Group {
	g := Group{ID: id, Name: name}
	for i, key := range keys {
		g.Permissions = append(g.Permissions, Permission{ID: uint(i + 1), Key: key})
	}
	return g
}

func TestEffectivePermissions(t *testing.T) {
	t.Run("união de job role e grupos extras sem duplicatas", func(t *testing.T) {
		member := &TeamMember{
			JobRole: JobRole{
				ID:   1,
				Name: "Support",
				Groups: []Group{
					groupWith(1, "Viewers", "BUSINESS_VIEW", "TEAM_VIEW"),
					groupWith(2, "Reports", "SMS_REPORT_VIEW"),
				},
			},
			ExtraGroups: []Group{
				groupWith(3, "Billing", "PLAN_VIEW", "BUSINESS_VIEW"),
			},
		}

		got := member.EffectivePermissions()
		want := []string{"BUSINESS_VIEW", "PLAN_VIEW", "SMS_REPORT_VIEW", "TEAM_VIEW"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("esperava %v, obteve %v", want, got)
		}
	})

	t.Run("resultado independe da ordem dos grupos", func(t *testing.T) {
		a := &TeamMember{
			JobRole: JobRole{ID: 1, Groups: []Group{
				groupWith(1, "A", "TEAM_VIEW"),
				groupWith(2, "B", "PLAN_VIEW"),
			}},
		}
		b := &TeamMember{
			JobRole: JobRole{ID: 1, Groups: []Group{
				groupWith(2, "B", "PLAN_VIEW"),
				groupWith(1, "A", "TEAM_VIEW"),
			}},
		}

		if !reflect.DeepEqual(a.EffectivePermissions(), b.EffectivePermissions()) {
			t.Errorf("esperava conjuntos iguais, obteve %v e %v",
				a.EffectivePermissions(), b.EffectivePermissions())
		}
	})

	t.Run("membro sem grupos tem conjunto vazio", func(t *testing.T) {
		member := &TeamMember{JobRole: JobRole{ID: 1, Name: "Empty"}}

		if got := member.EffectivePermissions(); len(got) != 0 {
			t.Errorf("esperava conjunto vazio, obteve %v", got)
		}
	})

	t.Run("grupos extras são aditivos, nunca revogam", func(t *testing.T) {
		member := &TeamMember{
			JobRole: JobRole{ID: 1, Groups: []Group{
				groupWith(1, "Admins", "ACCESS_MANAGE"),
			}},
			ExtraGroups: []Group{
				groupWith(2, "Empty"),
			},
		}

		if !member.HasPermission("ACCESS_MANAGE") {
			t.Error("esperava que a permissão do job role fosse mantida")
		}
	})
}

func TestTeamMemberHasPermission(t *testing.T) {
	member := &TeamMember{
		JobRole: JobRole{ID: 1, Groups: []Group{
			groupWith(1, "Viewers", "TEAM_VIEW"),
		}},
		ExtraGroups: []Group{
			groupWith(2, "Billing", "PLAN_MANAGE"),
		},
	}

	t.Run("encontra permissão via job role", func(t *testing.T) {
		if !member.HasPermission("TEAM_VIEW") {
			t.Error("esperava permissão TEAM_VIEW")
		}
	})

	t.Run("encontra permissão via grupo extra", func(t *testing.T) {
		if !member.HasPermission("PLAN_MANAGE") {
			t.Error("esperava permissão PLAN_MANAGE")
		}
	})

	t.Run("nega permissão ausente", func(t *testing.T) {
		if member.HasPermission("ACCESS_MANAGE") {
			t.Error("não esperava permissão ACCESS_MANAGE")
		}
	})
}

func TestTeamMemberValidate(t *testing.T) {
	t.Run("email é obrigatório", func(t *testing.T) {
		member := &TeamMember{JobRole: JobRole{ID: 1}}
		if err := member.Validate(); err != ErrTeamMemberEmailRequired {
			t.Errorf("esperava ErrTeamMemberEmailRequired, obteve %v", err)
		}
	})
}
