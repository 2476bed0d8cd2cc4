package domain

import "time"

// UserStatus tracks where a user sits in the account review lifecycle.
type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusActive   UserStatus = "active"
	StatusRejected UserStatus = "rejected"
)

// User represents the core user model in our system. Profile fields are
// pointers because they stay null until an administrator approves the user's
// KYC submission and the verified data is copied over.
type User struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	FullName      *string    `json:"fullName,omitempty"`
	Address       *string    `json:"address,omitempty"`
	PhoneNumber   *string    `json:"phoneNumber,omitempty"`
	IDFile        *string    `json:"idFile,omitempty"`
	BankStatement *string    `json:"bankStatement,omitempty"`
	Status        UserStatus `json:"status"`
	BalanceETB    int64      `json:"balanceETB"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SignInRequest is the payload for the sign-in endpoint.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecisionRequest carries the administrator's free-text decision. Anything
// other than "accept" (case-insensitive) rejects the user.
type DecisionRequest struct {
	Message string `json:"message"`
}
