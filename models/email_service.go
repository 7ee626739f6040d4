package models

import (
	"fmt"
	"strconv"

	"github.com/Sarvesh-GanesanW/enterprises/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendContactNotification(req ContactRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.AppConfig.SMTPFrom)
	m.SetHeader("To", config.AppConfig.NotifyEmail)
	m.SetHeader("Subject", fmt.Sprintf("New contact enquiry from %s", req.FullName))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; text-align: center; }
        .detail { background-color: #fffbeb; padding: 16px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Sree Rajalakshmi Enterprises</div>
        <h2 style="color: #333;">New Contact Enquiry</h2>
        <div class="detail">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Message:</strong> %s</p>
        </div>
        <div class="footer">
            <p>This is an automated notification from the tea storefront.</p>
        </div>
    </div>
</body>
</html>
	`, req.FullName, req.Email, req.PhoneNumber, req.Message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderNotification(req OrderRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.AppConfig.SMTPFrom)
	m.SetHeader("To", config.AppConfig.NotifyEmail)
	m.SetHeader("Subject", fmt.Sprintf("New wholesale order request from %s", req.FullName))

	sample := "No"
	if req.NeedSample {
		sample = "Yes"
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; text-align: center; }
        .detail { background-color: #fffbeb; padding: 16px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Sree Rajalakshmi Enterprises</div>
        <h2 style="color: #333;">New Wholesale Order Request</h2>
        <div class="detail">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Address:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Requirements:</strong> %s</p>
            <p><strong>Sample requested:</strong> %s</p>
        </div>
        <div class="footer">
            <p>This is an automated notification from the tea storefront.</p>
        </div>
    </div>
</body>
</html>
	`, req.FullName, req.Address, req.PhoneNumber, req.Requirements, sample)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
