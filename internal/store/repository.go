/**
 * @description
 * This file defines the interfaces for the data access layer (repositories).
 * The application logic depends on these interfaces rather than on the
 * concrete PostgreSQL implementations, which keeps the handlers and the
 * service testable with in-memory fakes.
 */
package store

import (
	"context"
	"errors"

	"github.com/inclufi/account-service/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the contract for database operations on users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateStatus changes only the user's status and returns the updated row.
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error)
	// ApplyKycApproval copies the submission's profile fields onto the user,
	// activates the account and sets the opening balance, returning the
	// updated row.
	ApplyKycApproval(ctx context.Context, id int64, sub *domain.KycSubmission, balanceETB int64) (*domain.User, error)
}

// KycRepository defines the contract for KYC submissions and the linked bank
// accounts created from them.
type KycRepository interface {
	FindSubmissionByUserID(ctx context.Context, userID int64) (*domain.KycSubmission, error)
	DeleteSubmission(ctx context.Context, userID int64) error
	CreateLinkedBankAccount(ctx context.Context, account *domain.LinkedBankAccount) (int64, error)
}
