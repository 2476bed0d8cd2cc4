/**
 * @description
 * PostgreSQL implementation of the UserRepository. All mutations return the
 * updated row via RETURNING so the API can echo the user back to the caller
 * without a second round trip.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5: The PostgreSQL driver.
 */
package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inclufi/account-service/internal/domain"
)

const userColumns = `id, email, password_hash, full_name, address, phone_number, id_file, bank_statement, status, balance_etb, created_at, updated_at`

// PostgresUserRepository is the PostgreSQL implementation of the UserRepository.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new instance of PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Address,
		&u.PhoneNumber,
		&u.IDFile,
		&u.BankStatement,
		&u.Status,
		&u.BalanceETB,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves a user by their unique email address.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Error finding user by email: %v", err)
	}
	return user, err
}

// FindByID retrieves a user by their internal ID.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Error finding user by id %d: %v", id, err)
	}
	return user, err
}

// UpdateStatus sets the user's status and returns the updated row.
func (r *PostgresUserRepository) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error) {
	query := `
        UPDATE users
        SET status = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, id, status))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Error updating status for user %d: %v", id, err)
	}
	return user, err
}

// ApplyKycApproval activates the user with the submission's verified profile
// fields. The submission's data, not whatever the user row held before, is
// authoritative for the profile.
func (r *PostgresUserRepository) ApplyKycApproval(ctx context.Context, id int64, sub *domain.KycSubmission, balanceETB int64) (*domain.User, error) {
	query := `
        UPDATE users
        SET full_name = $2,
            address = $3,
            phone_number = $4,
            id_file = $5,
            bank_statement = $6,
            status = $7,
            balance_etb = $8,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query,
		id,
		sub.FullName,
		sub.Address,
		sub.PhoneNumber,
		sub.IDFile,
		sub.BankStatement,
		domain.StatusActive,
		balanceETB,
	))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("Error applying KYC approval for user %d: %v", id, err)
	}
	return user, err
}
