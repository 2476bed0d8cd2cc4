/**
 * @description
 * This package sends the approval/rejection decision emails over SMTP. The
 * two templates are fixed; only the recipient's display name is substituted.
 * Failures propagate to the caller — there is no retry or delivery tracking.
 */
package mailer

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"
)

const (
	approvedSubject = "Your Account Has Been Approved"
	rejectedSubject = "Your Account Application Was Rejected"

	approvedBody = "Hello %s,\n\nCongratulations! Your account has been approved. You can now log in and start using our services.\n\nBest regards,\nIncluFi"
	rejectedBody = "Hello %s,\n\nWe regret to inform you that your account application was rejected. If you believe this was a mistake, please contact our support team.\n\nBest regards,\nIncluFi"
)

// decisionTemplate selects the subject and body for a decision email.
func decisionTemplate(name string, approved bool) (subject, body string) {
	if approved {
		return approvedSubject, fmt.Sprintf(approvedBody, name)
	}
	return rejectedSubject, fmt.Sprintf(rejectedBody, name)
}

// SMTPMailer sends decision emails through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// New creates an SMTPMailer from out-of-band transport configuration.
func New(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendDecision emails the user that their application was approved or
// rejected. The context is accepted for interface symmetry; net/smtp does not
// support cancellation mid-send.
func (m *SMTPMailer) SendDecision(_ context.Context, email, name string, approved bool) error {
	subject, body := decisionTemplate(name, approved)

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := net.JoinHostPort(m.host, m.port)

	log.Printf("Sending decision email to %s (approved=%v)", email, approved)
	return smtp.SendMail(addr, auth, m.from, []string{email}, msg)
}
