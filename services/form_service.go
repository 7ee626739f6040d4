package services

import (
	"context"
	"log"

	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
)

// FormService forwards contact and order submissions to the backend and,
// when SMTP is configured, mails a notification to the shop. Notification
// failures are logged but never fail the submission.
type FormService struct {
	repo  *repositories.SubmissionRepository
	email *models.EmailService
}

func NewFormService(repo *repositories.SubmissionRepository) *FormService {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
		email = nil
	}
	return &FormService{repo: repo, email: email}
}

func (s *FormService) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	if err := s.repo.SubmitContact(ctx, req); err != nil {
		log.Printf("Error submitting contact form: %v", err)
		return err
	}

	if s.email != nil {
		if err := s.email.SendContactNotification(req); err != nil {
			log.Printf("Contact notification email failed: %v", err)
		}
	}
	return nil
}

func (s *FormService) SubmitOrder(ctx context.Context, req models.OrderRequest) error {
	if err := s.repo.SubmitOrder(ctx, req); err != nil {
		log.Printf("Error submitting order form: %v", err)
		return err
	}

	if s.email != nil {
		if err := s.email.SendOrderNotification(req); err != nil {
			log.Printf("Order notification email failed: %v", err)
		}
	}
	return nil
}
