package impl

import (
	"context"
	"testing"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/errors"
	mockRepo "containerview/internal/mocks/repository"
	mockSvc "containerview/internal/mocks/service"
	"containerview/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCredentialVerifier(t *testing.T) (usecase.CredentialVerifier, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return NewCredentialVerifier(CredentialVerifierParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	}), userRepo, hasher
}

func TestCredentialVerifier_Success(t *testing.T) {
	verifier, userRepo, hasher := createTestCredentialVerifier(t)
	ctx := context.Background()
	user := &entity.User{TaxID: testIdentity, PasswordHash: "stored-hash"}

	userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(user, nil)
	hasher.EXPECT().Check("s3cret-pass", "stored-hash").Return(true)

	got, err := verifier.Verify(ctx, testIdentity, "s3cret-pass")

	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestCredentialVerifier_WrongSecret(t *testing.T) {
	verifier, userRepo, hasher := createTestCredentialVerifier(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(&entity.User{TaxID: testIdentity, PasswordHash: "stored-hash"}, nil)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	got, err := verifier.Verify(ctx, testIdentity, "wrong")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCredentialVerifier_UnknownIdentityStillHashes(t *testing.T) {
	verifier, userRepo, hasher := createTestCredentialVerifier(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByTaxID(ctx, "00000000000").Return(nil, repository.ErrUserNotFound).Twice()
	hasher.EXPECT().Hash(dummySecret).Return("dummy-hash", nil).Once()
	hasher.EXPECT().Check("whatever", "dummy-hash").Return(false).Twice()

	for range 2 {
		_, err := verifier.Verify(ctx, "00000000000", "whatever")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestCredentialVerifier_EmptyInput(t *testing.T) {
	verifier, _, _ := createTestCredentialVerifier(t)

	_, err := verifier.Verify(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = verifier.Verify(context.Background(), testIdentity, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCredentialVerifier_RepositoryFailureIsNotACredentialError(t *testing.T) {
	verifier, userRepo, _ := createTestCredentialVerifier(t)
	ctx := context.Background()
	cause := errors.New("connection refused")

	userRepo.EXPECT().FindByTaxID(ctx, testIdentity).Return(nil, cause)

	_, err := verifier.Verify(ctx, testIdentity, "secret")

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
