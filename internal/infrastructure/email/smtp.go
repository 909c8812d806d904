package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketStatusEmail(to, ticketNumber, fromStatus, toStatus string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	subject := fmt.Sprintf("Ticket %s is now %s", ticketNumber, toStatus)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Update</h2>
			<p>Ticket <strong>%s</strong> moved from <em>%s</em> to <em>%s</em>.</p>
			<p><a href="%s">View the ticket</a></p>
		</body>
		</html>
	`, ticketNumber, fromStatus, toStatus, ticketURL)

	plainBody := fmt.Sprintf(`
Ticket Update

Ticket %s moved from %s to %s.

View the ticket:
%s
	`, ticketNumber, fromStatus, toStatus, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendWorkCompletedEmail(to, ticketNumber string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	subject := fmt.Sprintf("Work completed on ticket %s", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Work Completed</h2>
			<p>The technician has finished work on ticket <strong>%s</strong>.</p>
			<p>Please review the result and confirm or request a return visit.</p>
			<p><a href="%s">Review the ticket</a></p>
		</body>
		</html>
	`, ticketNumber, ticketURL)

	plainBody := fmt.Sprintf(`
Work Completed

The technician has finished work on ticket %s.
Please review the result and confirm or request a return visit.

Review the ticket:
%s
	`, ticketNumber, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
