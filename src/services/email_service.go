// src/services/email_service.go
package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/username/shipsync/src/config"
	"github.com/username/shipsync/src/logger"
	"github.com/username/shipsync/src/models"
)

// NewEmailService picks the report transport from configuration. Incomplete
// provider settings fall back to the mock sender so a run still completes
// and logs what it would have sent.
func NewEmailService(cfg *config.AppConfig) EmailService {
	provider := strings.ToLower(cfg.EmailServiceProvider)
	logger.L.Info("Initializing email service", "provider", provider)

	switch provider {
	case "mailgun":
		if cfg.MailgunDomain == "" || cfg.MailgunPrivateAPIKey == "" || cfg.SenderEmail == "" {
			logger.L.Warn("Mailgun configuration incomplete (Domain, API Key, or SenderEmail missing). Falling back to MockEmailService.")
			return &MockEmailService{}
		}
		return &MailgunEmailService{
			mg:          mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunPrivateAPIKey),
			senderEmail: cfg.SenderEmail,
			senderName:  cfg.SenderName,
			recipients:  cfg.ReportRecipients,
		}
	case "smtp":
		if cfg.SMTPServer == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" || cfg.SenderEmail == "" {
			logger.L.Warn("SMTP configuration incomplete. Falling back to MockEmailService.")
			return &MockEmailService{}
		}
		return &SMTPEmailService{
			server:      cfg.SMTPServer,
			port:        cfg.SMTPPort,
			user:        cfg.SMTPUser,
			password:    cfg.SMTPPassword,
			senderEmail: cfg.SenderEmail,
			recipients:  cfg.ReportRecipients,
		}
	default:
		logger.L.Info("Defaulting to MockEmailService.")
		return &MockEmailService{}
	}
}

type MailgunEmailService struct {
	mg          mailgun.Mailgun
	senderEmail string
	senderName  string
	recipients  []string
}

func (s *MailgunEmailService) SendStatusReport(ctx context.Context, outcomes []models.ShipmentOutcome, runID string) error {
	subject := reportSubject()
	plainBody, htmlBody := buildStatusReport(outcomes, runID)

	from := fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail)
	message := s.mg.NewMessage(from, subject, plainBody, s.recipients...)
	message.SetHtml(htmlBody)
	message.AddTag("order-status-report")

	sendCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	resp, id, err := s.mg.Send(sendCtx, message)
	if err != nil {
		logger.L.Error("Failed to send status report via Mailgun", "error", err, "mailgunResp", resp, "mailgunId", id)
		return fmt.Errorf("mailgun send failed: %w", err)
	}
	logger.L.Info("Status report sent via Mailgun", "recipients", len(s.recipients), "id", id)
	return nil
}

type SMTPEmailService struct {
	server      string
	port        int
	user        string
	password    string
	senderEmail string
	recipients  []string
}

func (s *SMTPEmailService) SendStatusReport(ctx context.Context, outcomes []models.ShipmentOutcome, runID string) error {
	subject := reportSubject()
	_, htmlBody := buildStatusReport(outcomes, runID)

	header := map[string]string{
		"From":         s.senderEmail,
		"To":           strings.Join(s.recipients, ", "),
		"Subject":      subject,
		"MIME-version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}
	var message strings.Builder
	for k, v := range header {
		fmt.Fprintf(&message, "%s: %s\r\n", k, v)
	}
	message.WriteString("\r\n" + htmlBody)

	auth := smtp.PlainAuth("", s.user, s.password, s.server)
	addr := fmt.Sprintf("%s:%d", s.server, s.port)
	if err := smtp.SendMail(addr, auth, s.senderEmail, s.recipients, []byte(message.String())); err != nil {
		logger.L.Error("Failed to send status report via SMTP", "error", err)
		return fmt.Errorf("failed to send status report via SMTP: %w", err)
	}
	logger.L.Info("Status report sent via SMTP", "recipients", len(s.recipients))
	return nil
}

type MockEmailService struct{}

func (m *MockEmailService) SendStatusReport(ctx context.Context, outcomes []models.ShipmentOutcome, runID string) error {
	plainBody, _ := buildStatusReport(outcomes, runID)
	logger.L.Info("MockEmailService: would send status report",
		"subject", reportSubject(), "records", len(outcomes), "body", plainBody)
	return nil
}

func reportSubject() string {
	return fmt.Sprintf("Order Status Update %s", time.Now().UTC().Format("2006-01-02"))
}

// buildStatusReport renders the per-record outcome table, one row per input
// shipment record regardless of how its update went.
func buildStatusReport(outcomes []models.ShipmentOutcome, runID string) (plain, html string) {
	var plainB, htmlB strings.Builder

	plainB.WriteString("Order Status Upload Report\n\n")
	for _, o := range outcomes {
		fmt.Fprintf(&plainB, "%s | %s | %s | %s\n",
			o.SalesOrder, o.UploadStatus, o.ShipToContact, o.ConsignmentNumber)
	}
	fmt.Fprintf(&plainB, "\nRun ID: %s\n", runID)

	htmlB.WriteString("<h2>Order Status Upload Report</h2>")
	htmlB.WriteString("<p>Upload report for today's dispatched orders:</p>")
	htmlB.WriteString("<table style='border-collapse: collapse; width: 100%;'>")
	htmlB.WriteString("<thead><tr style='background-color: #f2f2f2;'>")
	for _, col := range []string{"Order", "Order Status", "Customer", "Order Consignment"} {
		fmt.Fprintf(&htmlB, "<th style='border: 1px solid #ddd; padding: 8px;'>%s</th>", col)
	}
	htmlB.WriteString("</tr></thead><tbody>")
	for _, o := range outcomes {
		htmlB.WriteString("<tr>")
		for _, cell := range []string{o.SalesOrder, o.UploadStatus, o.ShipToContact, o.ConsignmentNumber} {
			fmt.Fprintf(&htmlB, "<td style='border: 1px solid #ddd; padding: 8px;'>%s</td>", cell)
		}
		htmlB.WriteString("</tr>")
	}
	htmlB.WriteString("</tbody></table>")
	fmt.Fprintf(&htmlB, "<p style='font-size: 12px; color: #888;'>Automated report from the order management sync. Run %s.</p>", runID)

	return plainB.String(), htmlB.String()
}
