// Package memstore is an in-memory, transactional stand-in for the postgres
// repositories, used by tests that exercise whole flows.
package memstore

import (
	"context"
	"sync"
	"time"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/errors"

	"github.com/google/uuid"
)

// Store implements repository.TransactionManager and repository.RepositoryFactory.
// Execute runs one transaction at a time, which matches the per-identity row lock
// for the single-identity flows the tests drive.
type Store struct {
	txMu sync.Mutex

	mu    sync.Mutex
	users map[string]*entity.User
	codes map[uuid.UUID]*entity.VerificationCode
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users: map[string]*entity.User{},
		codes: map[uuid.UUID]*entity.VerificationCode{},
	}
}

// PutUser inserts or replaces a credential record.
func (s *Store) PutUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	s.users[user.TaxID] = &copied
}

// DeleteUser removes a credential record.
func (s *Store) DeleteUser(taxID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, taxID)
}

// Codes returns copies of the stored codes of an identity.
func (s *Store) Codes(taxID string) []entity.VerificationCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.VerificationCode
	for _, c := range s.codes {
		if c.TaxID == taxID {
			out = append(out, *c)
		}
	}

	return out
}

// CodeCount returns the number of stored codes across all identities.
func (s *Store) CodeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.codes)
}

func (s *Store) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

func (s *Store) UserRepo() repository.UserRepository { return (*userRepo)(s) }

func (s *Store) VerificationCodeRepo() repository.VerificationCodeRepository { return (*codeRepo)(s) }

type userRepo Store

func (r *userRepo) FindByTaxID(_ context.Context, taxID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[taxID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *userRepo) ExistsByRole(_ context.Context, role entity.Role) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Role == role {
			return true, nil
		}
	}

	return false, nil
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.TaxID == user.TaxID || existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("uni_users_tax_id")
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.TaxID] = &copied

	return nil
}

func (r *userRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.TaxID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.TaxID] = &copied

	return nil
}

func (r *userRepo) LockByTaxID(_ context.Context, taxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[taxID]; !ok {
		return repository.ErrUserNotFound
	}

	return nil
}

type codeRepo Store

func (r *codeRepo) Create(_ context.Context, code *entity.VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.codes {
		if c.TaxID == code.TaxID {
			return errors.New("duplicate key value violates unique constraint \"idx_verification_codes_tax_id\"")
		}
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	copied := *code
	r.codes[code.ID] = &copied

	return nil
}

func (r *codeRepo) FindLatestByTaxID(_ context.Context, taxID string) (*entity.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *entity.VerificationCode
	for _, c := range r.codes {
		if c.TaxID == taxID && (latest == nil || c.ExpiresAt.After(latest.ExpiresAt)) {
			latest = c
		}
	}
	if latest == nil {
		return nil, repository.ErrVerificationCodeNotFound
	}
	copied := *latest

	return &copied, nil
}

func (r *codeRepo) DeleteByTaxID(_ context.Context, taxID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, c := range r.codes {
		if c.TaxID == taxID {
			delete(r.codes, id)
			n++
		}
	}

	return n, nil
}

func (r *codeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.codes, id)

	return nil
}

func (r *codeRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, c := range r.codes {
		if !now.Before(c.ExpiresAt) {
			delete(r.codes, id)
			n++
		}
	}

	return n, nil
}
