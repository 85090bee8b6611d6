package entities

import "testing"

func validPlan() *Plan {
	cycle := BillingCycleMonthly
	return &Plan{
		Name:         "Standard",
		Status:       PlanStatusActive,
		BillingType:  BillingTypeRecurring,
		BillingCycle: &cycle,
		Amount:       499,
		SMSLimit:     600,
		OfferLimit:   10,
	}
}

func TestPlanValidate(t *testing.T) {
	t.Run("plano válido passa", func(t *testing.T) {
		if err := validPlan().Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve %v", err)
		}
	})

	t.Run("nome é obrigatório", func(t *testing.T) {
		plan := validPlan()
		plan.Name = "   "
		if err := plan.Validate(); err != ErrPlanNameRequired {
			t.Errorf("esperava ErrPlanNameRequired, obteve %v", err)
		}
	})

	t.Run("plano recorrente exige ciclo", func(t *testing.T) {
		plan := validPlan()
		plan.BillingCycle = nil
		if err := plan.Validate(); err != ErrBillingCycleRequired {
			t.Errorf("esperava ErrBillingCycleRequired, obteve %v", err)
		}
	})

	t.Run("plano avulso rejeita ciclo", func(t *testing.T) {
		cycle := BillingCycleMonthly
		plan := validPlan()
		plan.BillingType = BillingTypeOneTime
		plan.BillingCycle = &cycle
		if err := plan.Validate(); err != ErrBillingCycleNotAllowed {
			t.Errorf("esperava ErrBillingCycleNotAllowed, obteve %v", err)
		}
	})

	t.Run("valores negativos são rejeitados", func(t *testing.T) {
		plan := validPlan()
		plan.DiscountAmount = -10
		if err := plan.Validate(); err != ErrNegativePlanAmount {
			t.Errorf("esperava ErrNegativePlanAmount, obteve %v", err)
		}
	})

	t.Run("topups exigem allow_topups", func(t *testing.T) {
		plan := validPlan()
		plan.TopupOptions = []TopupOption{{Amount: 99, SMS: 100}}
		if err := plan.Validate(); err != ErrTopupOptionsNotAllowed {
			t.Errorf("esperava ErrTopupOptionsNotAllowed, obteve %v", err)
		}
	})

	t.Run("topup com valores zerados é rejeitado", func(t *testing.T) {
		plan := validPlan()
		plan.AllowTopups = true
		plan.TopupOptions = []TopupOption{{Amount: 0, SMS: 100}}
		if err := plan.Validate(); err != ErrInvalidTopupOption {
			t.Errorf("esperava ErrInvalidTopupOption, obteve %v", err)
		}
	})
}
