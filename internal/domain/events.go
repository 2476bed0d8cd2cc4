package domain

// KycDecisionEvent is published to RabbitMQ after an administrator decides a
// user's application, so downstream services (wallet provisioning, analytics)
// can react without the admin API waiting on them.
type KycDecisionEvent struct {
	UserID     int64      `json:"user_id"`
	Status     UserStatus `json:"status"`
	KycApplied bool       `json:"kyc_applied"`
}
