package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"containerview/config"
	"containerview/internal/domain/repository"
	mockRepo "containerview/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const (
	testIdentity = "12345678901"
	testEmail    = "ana@example.com"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          4,
			VerificationCodeTTL: 5 * time.Minute,
			CodeSweepInterval:   0,
		},
		Bootstrap: &config.BootstrapConfig{},
	}
}

// expectTransaction makes the mocked manager run fn against factory and return its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
