package domain

import "time"

// KycSubmission is the temporary identity/banking record a user files for
// review. At most one exists per user; approval consumes it, rejection leaves
// it in place so the application can be reviewed again.
type KycSubmission struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	FullName      string    `json:"fullName"`
	Address       string    `json:"address"`
	PhoneNumber   string    `json:"phoneNumber"`
	IDFile        string    `json:"idFile"`
	BankStatement string    `json:"bankStatement"`
	AccountNumber string    `json:"accountNumber"`
	BankName      string    `json:"bankName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LinkedBankAccount is the user's verified external bank account. It is
// created exactly once, from the submission's banking fields, on approval.
type LinkedBankAccount struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	AccountNumber string    `json:"accountNumber"`
	BankName      string    `json:"bankName"`
	CreatedAt     time.Time `json:"createdAt"`
}
