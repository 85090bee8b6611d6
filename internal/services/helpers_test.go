package services

import (
	"context"

	"github.com/promobandhu/admin-backend/internal/domain/ports"
)

// nopLogger descarta logs nos testes
type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
