package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// PasswordServiceImpl implements domain.PasswordService. Bcrypt is
// CPU-bound, so hashing and verification run under a weighted semaphore
// rather than under any per-user lock.
type PasswordServiceImpl struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordService creates a new password service. maxConcurrent bounds
// the number of bcrypt operations running at once; values below 1 fall
// back to the number the default container config ships with.
func NewPasswordService(maxConcurrent int) domain.PasswordService {
	if maxConcurrent < 1 {
		maxConcurrent = 4
	}
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		return false
	}
	defer p.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
