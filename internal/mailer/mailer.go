// Package mailer simulates an email provider. Messages are written to
// the process log instead of being delivered; the verification link is
// still constructed exactly as a real sender would, so the token round
// trip can be exercised end to end.
package mailer

import (
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"
)

// Service is the simulated email sender.
type Service struct {
	baseURL string // public frontend base, e.g. http://localhost:3000
}

// New creates a Service that builds verification links against baseURL.
func New(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
	}
}

// SendVerificationEmail "sends" the message carrying the one-time
// verification token embedded in a link.
func (s *Service) SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, url.QueryEscape(token))
	msgID := uuid.New().String()
	log.Printf("[EMAIL MOCK] message %s: verification email sent to %s with token: %s", msgID, to, token)
	log.Printf("[EMAIL MOCK] message %s: link: %s", msgID, link)
	return nil
}

// SendWelcomeEmail "sends" the post-verification welcome message.
func (s *Service) SendWelcomeEmail(to string) error {
	msgID := uuid.New().String()
	log.Printf("[EMAIL MOCK] message %s: welcome email sent to %s", msgID, to)
	return nil
}
