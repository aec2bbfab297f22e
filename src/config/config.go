package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	LogLevel string

	// Order management API
	OrderAPIID        string
	OrderAPIKey       string
	OrderAPIURL       string
	OrderSearchStatus string
	OrderUpdateStatus string
	OrderContentType  string
	OrderAccept       string
	OrderClientType   string
	OrderAPITimeout   time.Duration

	// Microsoft Graph (mailbox the dispatch CSV arrives in)
	GraphTenantID      string
	GraphClientID      string
	GraphClientSecret  string
	GraphScope         string
	SearchEmailInbox   string
	SearchEmailSender  string
	SearchEmailSubject string
	AttachmentDir      string

	// When set, the pipeline reads this file instead of polling the mailbox.
	LocalCSVPath string

	EmailServiceProvider string

	SMTPServer   string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	MailgunDomain        string
	MailgunPrivateAPIKey string

	SenderEmail      string
	SenderName       string
	ReportRecipients []string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		OrderAPIID:        getEnv("ORDER_API_ID", ""),
		OrderAPIKey:       getEnv("ORDER_API_KEY", ""),
		OrderAPIURL:       getEnv("ORDER_API_URL", ""),
		OrderSearchStatus: getEnv("ORDER_SEARCH_STATUS", ""),
		OrderUpdateStatus: getEnv("ORDER_UPDATE_STATUS", ""),
		OrderContentType:  getEnv("ORDER_API_CONTENT_TYPE", "application/json"),
		OrderAccept:       getEnv("ORDER_API_ACCEPT", "application/json"),
		OrderClientType:   getEnv("ORDER_API_CLIENT_TYPE", ""),
		OrderAPITimeout:   getEnvAsDuration("ORDER_API_TIMEOUT", 30*time.Second),

		GraphTenantID:      getEnv("GRAPH_TENANT_ID", ""),
		GraphClientID:      getEnv("GRAPH_CLIENT_ID", ""),
		GraphClientSecret:  getEnv("GRAPH_CLIENT_SECRET", ""),
		GraphScope:         getEnv("GRAPH_SCOPE", "https://graph.microsoft.com/.default"),
		SearchEmailInbox:   getEnv("SEARCH_EMAIL_INBOX", ""),
		SearchEmailSender:  getEnv("SEARCH_EMAIL_SENDER", ""),
		SearchEmailSubject: getEnv("SEARCH_EMAIL_SUBJECT", ""),
		AttachmentDir:      getEnv("ATTACHMENT_DIR", "."),

		LocalCSVPath: getEnv("LOCAL_CSV_PATH", ""),

		EmailServiceProvider: getEnv("EMAIL_SERVICE_PROVIDER", "mailgun"),

		SMTPServer:   getEnv("SMTP_SERVER", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		MailgunDomain:        getEnv("MAILGUN_DOMAIN", ""),
		MailgunPrivateAPIKey: getEnv("MAILGUN_PRIVATE_API_KEY", ""),

		SenderEmail:      getEnv("SENDER_EMAIL", ""),
		SenderName:       getEnv("SENDER_NAME", "Shipment Sync"),
		ReportRecipients: getEnvAsList("REPORT_RECIPIENTS"),
	}

	log.Printf("Configuration loaded: LogLevel=%s, OrderAPIURL=%s, EmailProvider=%s",
		Cfg.LogLevel, Cfg.OrderAPIURL, Cfg.EmailServiceProvider)
}

// Validate checks every required setting and reports all the missing ones at
// once, so a misconfigured deployment surfaces the full list in a single run
// instead of one field per restart. Called before any I/O happens.
func (c *AppConfig) Validate() error {
	var missing []string

	if c.OrderAPIID == "" {
		missing = append(missing, "ORDER_API_ID (order management API auth id)")
	}
	if c.OrderAPIKey == "" {
		missing = append(missing, "ORDER_API_KEY (order management API signing key)")
	}
	if c.OrderAPIURL == "" {
		missing = append(missing, "ORDER_API_URL (sales order endpoint base URL)")
	}
	if c.OrderSearchStatus == "" {
		missing = append(missing, "ORDER_SEARCH_STATUS (status used to filter candidate orders)")
	}
	if c.OrderUpdateStatus == "" {
		missing = append(missing, "ORDER_UPDATE_STATUS (status written to matched orders)")
	}
	if c.OrderClientType == "" {
		missing = append(missing, "ORDER_API_CLIENT_TYPE (client-type header value)")
	}

	// Graph settings are only needed when the CSV comes from the mailbox.
	if c.LocalCSVPath == "" {
		if c.GraphTenantID == "" {
			missing = append(missing, "GRAPH_TENANT_ID")
		}
		if c.GraphClientID == "" {
			missing = append(missing, "GRAPH_CLIENT_ID")
		}
		if c.GraphClientSecret == "" {
			missing = append(missing, "GRAPH_CLIENT_SECRET")
		}
		if c.SearchEmailInbox == "" {
			missing = append(missing, "SEARCH_EMAIL_INBOX (mailbox to poll for the dispatch CSV)")
		}
	}

	if c.SenderEmail == "" {
		missing = append(missing, "SENDER_EMAIL (report sender address)")
	}
	if len(c.ReportRecipients) == 0 {
		missing = append(missing, "REPORT_RECIPIENTS (at least one report recipient)")
	}
	if c.EmailServiceProvider == "mailgun" {
		if c.MailgunDomain == "" {
			missing = append(missing, "MAILGUN_DOMAIN (required when EMAIL_SERVICE_PROVIDER is 'mailgun')")
		}
		if c.MailgunPrivateAPIKey == "" {
			missing = append(missing, "MAILGUN_PRIVATE_API_KEY (required when EMAIL_SERVICE_PROVIDER is 'mailgun')")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuration has %d missing required setting(s):\n  - %s",
			len(missing), strings.Join(missing, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}
	parts := strings.Split(valueStr, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
