package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promobandhu/admin-backend/internal/domain/entities"
	"github.com/promobandhu/admin-backend/internal/domain/errors"
	"github.com/promobandhu/admin-backend/internal/domain/repositories"
)

// fakeSubscriptionRepo guarda assinaturas em memória e conta updates
type fakeSubscriptionRepo struct {
	subscriptions map[string]*entities.Subscription
	updateCalls   int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subscriptions: make(map[string]*entities.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *entities.Subscription) error {
	sub.ID = uuid.NewString()
	copied := *sub
	r.subscriptions[sub.ID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ context.Context, id string) (*entities.Subscription, error) {
	sub, ok := r.subscriptions[id]
	if !ok {
		return nil, nil
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *entities.Subscription) error {
	r.updateCalls++
	copied := *sub
	r.subscriptions[sub.ID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id string) error {
	delete(r.subscriptions, id)
	return nil
}

func (r *fakeSubscriptionRepo) List(_ context.Context, _ repositories.SubscriptionFilters) ([]*entities.Subscription, error) {
	var all []*entities.Subscription
	for _, sub := range r.subscriptions {
		copied := *sub
		all = append(all, &copied)
	}
	return all, nil
}

// fakeBusinessRepo conhece um conjunto fixo de negócios
type fakeBusinessRepo struct {
	businesses map[string]*entities.Business
}

func newFakeBusinessRepo(ids ...string) *fakeBusinessRepo {
	businesses := make(map[string]*entities.Business)
	for _, id := range ids {
		businesses[id] = &entities.Business{ID: id, Name: "Business " + id, Status: entities.BusinessStatusActive}
	}
	return &fakeBusinessRepo{businesses: businesses}
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, id string) (*entities.Business, error) {
	return r.businesses[id], nil
}

func (r *fakeBusinessRepo) List(_ context.Context, _ repositories.BusinessFilters) ([]*entities.Business, error) {
	var all []*entities.Business
	for _, b := range r.businesses {
		all = append(all, b)
	}
	return all, nil
}

func setupSubscriptionService(t *testing.T, now time.Time) (*SubscriptionService, *fakeSubscriptionRepo) {
	t.Helper()
	subRepo := newFakeSubscriptionRepo()
	service := NewSubscriptionService(subRepo, newFakeBusinessRepo("b1"), nopLogger{})
	service.now = func() time.Time { return now }
	return service, subRepo
}

func TestCreateSubscription(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("trial implícito usa 14 dias por padrão", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		sub, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierBasic,
			Status:     entities.SubscriptionStatusTrial,
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		wantEnd := now.AddDate(0, 0, 14)
		if sub.TrialEndsAt == nil || !sub.TrialEndsAt.Equal(wantEnd) {
			t.Errorf("esperava fim de trial %v, obteve %v", wantEnd, sub.TrialEndsAt)
		}
		if sub.TrialStartsAt == nil || !sub.TrialStartsAt.Equal(now) {
			t.Errorf("esperava início de trial %v, obteve %v", now, sub.TrialStartsAt)
		}
	})

	t.Run("trial_days customizado é respeitado", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		days := 30
		sub, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierPremium,
			Status:     entities.SubscriptionStatusTrial,
			TrialDays:  &days,
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		wantEnd := now.AddDate(0, 0, 30)
		if sub.TrialEndsAt == nil || !sub.TrialEndsAt.Equal(wantEnd) {
			t.Errorf("esperava fim de trial %v, obteve %v", wantEnd, sub.TrialEndsAt)
		}
	})

	t.Run("datas explícitas exigem o par completo", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		start := now
		_, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierBasic,
			Status:     entities.SubscriptionStatusActive,
			StartDate:  &start,
		})
		if err != entities.ErrSubscriptionDateOrder {
			t.Errorf("esperava ErrSubscriptionDateOrder, obteve %v", err)
		}
	})

	t.Run("fim precisa ser posterior ao início", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		start := now
		end := now
		_, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierBasic,
			Status:     entities.SubscriptionStatusActive,
			StartDate:  &start,
			EndDate:    &end,
		})
		if err != entities.ErrSubscriptionDateOrder {
			t.Errorf("esperava ErrSubscriptionDateOrder, obteve %v", err)
		}
	})

	t.Run("negócio inexistente retorna not found", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		_, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "ghost",
			Plan:       entities.PlanTierBasic,
			Status:     entities.SubscriptionStatusActive,
		})
		if err != errors.ErrBusinessNotFound {
			t.Errorf("esperava ErrBusinessNotFound, obteve %v", err)
		}
	})
}

func TestCancelSubscription(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("cancela assinatura ativa", func(t *testing.T) {
		service, subRepo := setupSubscriptionService(t, now)

		created, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierStandard,
			Status:     entities.SubscriptionStatusActive,
		})
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		cancelled, err := service.CancelSubscription(ctx, created.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cancelled.Status != entities.SubscriptionStatusCancelled {
			t.Errorf("esperava status cancelled, obteve %s", cancelled.Status)
		}
		if subRepo.updateCalls != 1 {
			t.Errorf("esperava 1 update, obteve %d", subRepo.updateCalls)
		}
	})

	t.Run("cancelar de novo não grava nada e devolve o registro", func(t *testing.T) {
		service, subRepo := setupSubscriptionService(t, now)

		created, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierStandard,
			Status:     entities.SubscriptionStatusActive,
		})
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}
		if _, err := service.CancelSubscription(ctx, created.ID); err != nil {
			t.Fatalf("primeiro cancelamento falhou: %v", err)
		}
		updatesAfterFirst := subRepo.updateCalls

		sub, err := service.CancelSubscription(ctx, created.ID)
		if err != entities.ErrSubscriptionAlreadyCancelled {
			t.Fatalf("esperava ErrSubscriptionAlreadyCancelled, obteve %v", err)
		}
		if sub == nil || sub.Status != entities.SubscriptionStatusCancelled {
			t.Error("esperava o registro atual junto com o aviso")
		}
		if subRepo.updateCalls != updatesAfterFirst {
			t.Errorf("não esperava novo update, obteve %d", subRepo.updateCalls-updatesAfterFirst)
		}
	})

	t.Run("assinatura inexistente retorna not found", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		_, err := service.CancelSubscription(ctx, "ghost")
		if err != errors.ErrSubscriptionNotFound {
			t.Errorf("esperava ErrSubscriptionNotFound, obteve %v", err)
		}
	})
}

func TestUpdateSubscription(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("edição direta de status não executa o cancelamento", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		created, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierBasic,
			Status:     entities.SubscriptionStatusActive,
		})
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		status := entities.SubscriptionStatusCancelled
		updated, err := service.UpdateSubscription(ctx, created.ID, UpdateSubscriptionInput{Status: &status})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		// Diferente do cancelamento dedicado, a edição direta não
		// preenche CancelledAt nem limpa NextRenewalAt
		if updated.CancelledAt != nil {
			t.Error("edição direta não deveria preencher CancelledAt")
		}
	})

	t.Run("campos nil são mantidos", func(t *testing.T) {
		service, _ := setupSubscriptionService(t, now)

		created, err := service.CreateSubscription(ctx, CreateSubscriptionInput{
			BusinessID: "b1",
			Plan:       entities.PlanTierStandard,
			Status:     entities.SubscriptionStatusTrial,
		})
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		plan := entities.PlanTierPremium
		updated, err := service.UpdateSubscription(ctx, created.ID, UpdateSubscriptionInput{Plan: &plan})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.Plan != entities.PlanTierPremium {
			t.Errorf("esperava plano premium, obteve %s", updated.Plan)
		}
		if updated.Status != entities.SubscriptionStatusTrial {
			t.Errorf("esperava status trial mantido, obteve %s", updated.Status)
		}
	})
}
