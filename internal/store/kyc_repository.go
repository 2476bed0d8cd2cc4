/**
 * @description
 * PostgreSQL implementation of the KycRepository: pending KYC submissions and
 * the linked bank accounts created from approved submissions.
 */
package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inclufi/account-service/internal/domain"
)

// PostgresKycRepository is the PostgreSQL implementation of the KycRepository.
type PostgresKycRepository struct {
	db *pgxpool.Pool
}

// NewPostgresKycRepository creates a new instance of PostgresKycRepository.
func NewPostgresKycRepository(db *pgxpool.Pool) *PostgresKycRepository {
	return &PostgresKycRepository{db: db}
}

// FindSubmissionByUserID retrieves the pending submission for a user, if any.
func (r *PostgresKycRepository) FindSubmissionByUserID(ctx context.Context, userID int64) (*domain.KycSubmission, error) {
	query := `
        SELECT id, user_id, full_name, address, phone_number, id_file, bank_statement, account_number, bank_name, created_at
        FROM kyc_submissions
        WHERE user_id = $1
    `
	var sub domain.KycSubmission
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.FullName,
		&sub.Address,
		&sub.PhoneNumber,
		&sub.IDFile,
		&sub.BankStatement,
		&sub.AccountNumber,
		&sub.BankName,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Printf("Error finding KYC submission for user %d: %v", userID, err)
		return nil, err
	}
	return &sub, nil
}

// DeleteSubmission removes the user's pending submission.
func (r *PostgresKycRepository) DeleteSubmission(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM kyc_submissions WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("Error deleting KYC submission for user %d: %v", userID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateLinkedBankAccount inserts a verified bank account record and returns
// its new ID.
func (r *PostgresKycRepository) CreateLinkedBankAccount(ctx context.Context, account *domain.LinkedBankAccount) (int64, error) {
	query := `
        INSERT INTO linked_bank_accounts (user_id, account_number, bank_name)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query,
		account.UserID,
		account.AccountNumber,
		account.BankName,
	).Scan(&id)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error creating linked bank account: unique constraint violation on %s", pgErr.ConstraintName)
			return 0, err
		}
		log.Printf("Error inserting linked bank account for user %d: %v", account.UserID, err)
		return 0, err
	}
	return id, nil
}
