package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "send", "subject", subject)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *emailService) SendVerificationDecision(ctx context.Context, email, name string, status domain.OrgStatus) error {
	subject := "Second Serve verification update"
	body := fmt.Sprintf("Hello %s,\n\nYour organization's verification status is now: %s.\n\nBest regards,\nThe Second Serve Team", name, status)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendDonationStatusNotification(ctx context.Context, email, name, foodType string, status domain.DonationStatus) error {
	subject := "Donation request update"
	body := fmt.Sprintf("Hello %s,\n\nYour donation request (%s) is now: %s.\n\nBest regards,\nThe Second Serve Team", name, foodType, status)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	subject := "Reset your Second Serve password"
	body := fmt.Sprintf("Hello %s,\n\nUse the link below to choose a new password. The link expires shortly.\n\n%s\n\nIf you did not request this, you can ignore this email.\n\nBest regards,\nThe Second Serve Team", name, resetURL)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name, foodType, pickupDate, pickupTime string) error {
	subject := "Pickup reminder"
	body := fmt.Sprintf("Hello %s,\n\nReminder: a donation pickup (%s) is scheduled for %s at %s.\n\nBest regards,\nThe Second Serve Team", name, foodType, pickupDate, pickupTime)
	return s.send(email, name, subject, body)
}
