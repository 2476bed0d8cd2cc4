/**
 * @description
 * This file contains the core business logic for the account-service: the
 * sign-in flow and the administrator KYC decision flow. The Service
 * orchestrates the repositories, the token issuer, the mailer and the event
 * producer; handlers stay thin and only translate results onto the wire.
 *
 * @dependencies
 * - internal/domain, internal/store: Domain models and data access.
 * - pkg/password, pkg/rabbitmq: Credential verification and event publishing.
 */
package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/inclufi/account-service/internal/domain"
	"github.com/inclufi/account-service/internal/store"
	"github.com/inclufi/account-service/pkg/password"
	"github.com/inclufi/account-service/pkg/rabbitmq"
)

// DefaultApprovedBalanceETB is the opening balance credited when a user is
// approved with a KYC submission on file. Approval without a submission
// leaves the balance untouched.
const DefaultApprovedBalanceETB = 100000

// TokenIssuer produces a signed access token for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// Mailer sends the templated approval/rejection email.
type Mailer interface {
	SendDecision(ctx context.Context, email, name string, approved bool) error
}

// Service provides the business logic for sign-in and KYC decisions.
type Service struct {
	users  store.UserRepository
	kyc    store.KycRepository
	tokens TokenIssuer
	mailer Mailer
	events rabbitmq.Publisher // nil when event publishing is disabled
}

// NewService creates a new account service instance.
func NewService(users store.UserRepository, kyc store.KycRepository, tokens TokenIssuer, mailer Mailer, events rabbitmq.Publisher) *Service {
	return &Service{
		users:  users,
		kyc:    kyc,
		tokens: tokens,
		mailer: mailer,
		events: events,
	}
}

// SignInResult distinguishes soft credential failures from a successful
// sign-in. FieldErrors is non-empty exactly when authentication failed on a
// specific input field; hard failures come back as an error instead.
type SignInResult struct {
	AccessToken string
	FieldErrors map[string]string
}

// SignIn authenticates a user by email and password and issues an access
// token. Unknown emails and wrong passwords are soft failures, not errors.
func (s *Service) SignIn(ctx context.Context, email, plaintext string) (*SignInResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &SignInResult{FieldErrors: map[string]string{"email": "Invalid email"}}, nil
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return &SignInResult{FieldErrors: map[string]string{"password": "Incorrect password"}}, nil
	}

	accessToken, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &SignInResult{AccessToken: accessToken}, nil
}

// DecisionResult carries the outcome message for the admin and, on approval,
// the updated user record.
type DecisionResult struct {
	Message string
	User    *domain.User
}

// DecideKyc applies an administrator's accept/reject decision to a pending
// user. "accept" (case-insensitive) approves; any other non-empty message
// rejects. Returns store.ErrNotFound when the user does not exist.
func (s *Service) DecideKyc(ctx context.Context, userID int64, message string) (*DecisionResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(message, "accept") {
		return s.approve(ctx, user)
	}
	return s.reject(ctx, user)
}

func (s *Service) approve(ctx context.Context, user *domain.User) (*DecisionResult, error) {
	sub, err := s.kyc.FindSubmissionByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		// No submission on file: just activate the account.
		updated, err := s.users.UpdateStatus(ctx, user.ID, domain.StatusActive)
		if err != nil {
			return nil, err
		}
		s.publishDecision(ctx, user.ID, domain.StatusActive, false)
		return &DecisionResult{
			Message: "User status updated successfully (No KYC), account activated.",
			User:    updated,
		}, nil
	}

	updated, err := s.users.ApplyKycApproval(ctx, user.ID, sub, DefaultApprovedBalanceETB)
	if err != nil {
		return nil, err
	}

	if _, err := s.kyc.CreateLinkedBankAccount(ctx, &domain.LinkedBankAccount{
		UserID:        user.ID,
		AccountNumber: sub.AccountNumber,
		BankName:      sub.BankName,
	}); err != nil {
		return nil, err
	}

	// The email must go out before the submission is deleted: a failed send
	// leaves the record in place so the decision can be retried.
	if err := s.mailer.SendDecision(ctx, user.Email, displayName(user), true); err != nil {
		return nil, err
	}

	if err := s.kyc.DeleteSubmission(ctx, user.ID); err != nil {
		return nil, err
	}

	s.publishDecision(ctx, user.ID, domain.StatusActive, true)
	return &DecisionResult{
		Message: "User status updated successfully, KYC data applied, approval email sent.",
		User:    updated,
	}, nil
}

func (s *Service) reject(ctx context.Context, user *domain.User) (*DecisionResult, error) {
	if _, err := s.users.UpdateStatus(ctx, user.ID, domain.StatusRejected); err != nil {
		return nil, err
	}

	// The submission is consulted only to decide whether to email. It is
	// left in place so the application can be reviewed again.
	_, err := s.kyc.FindSubmissionByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		s.publishDecision(ctx, user.ID, domain.StatusRejected, false)
		return &DecisionResult{Message: "User rejected, no KYC data found, no email sent."}, nil
	}

	if err := s.mailer.SendDecision(ctx, user.Email, displayName(user), false); err != nil {
		return nil, err
	}

	s.publishDecision(ctx, user.ID, domain.StatusRejected, false)
	return &DecisionResult{Message: "User rejected, rejection email sent."}, nil
}

// publishDecision emits the decision event. The user's row is already
// committed at this point, so a broker failure is logged for manual follow-up
// rather than surfaced to the admin.
func (s *Service) publishDecision(ctx context.Context, userID int64, status domain.UserStatus, kycApplied bool) {
	if s.events == nil {
		return
	}
	event := domain.KycDecisionEvent{UserID: userID, Status: status, KycApplied: kycApplied}
	if err := s.events.Publish(ctx, "user_events", "user.kyc.decided", event); err != nil {
		log.Printf("CRITICAL: Failed to publish user.kyc.decided for user %d: %v", userID, err)
	}
}

// displayName returns the name used to address the user in emails. The
// pre-decision profile name is used, matching the record the admin reviewed.
func displayName(user *domain.User) string {
	if user.FullName != nil {
		return *user.FullName
	}
	return ""
}
