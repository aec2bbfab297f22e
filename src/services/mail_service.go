// src/services/mail_service.go
package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/username/shipsync/src/config"
	"github.com/username/shipsync/src/logger"
	"golang.org/x/oauth2/clientcredentials"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

type graphMessageList struct {
	Value []struct {
		ID      string `json:"id"`
		Subject string `json:"subject"`
	} `json:"value"`
}

type graphAttachmentList struct {
	Value []struct {
		ODataType    string `json:"@odata.type"`
		Name         string `json:"name"`
		ContentBytes string `json:"contentBytes"`
	} `json:"value"`
}

// graphMailServiceImpl finds today's dispatch email in the shared inbox via
// Microsoft Graph and saves its CSV attachment locally.
type graphMailServiceImpl struct {
	httpClient    *http.Client
	inbox         string
	senderFilter  string
	subjectFilter string
	attachmentDir string
}

// NewMailService builds a Graph client using the application's
// client-credential grant; tokens are fetched and refreshed automatically by
// the oauth2 transport.
func NewMailService(cfg *config.AppConfig) MailService {
	cc := clientcredentials.Config{
		ClientID:     cfg.GraphClientID,
		ClientSecret: cfg.GraphClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.GraphTenantID),
		Scopes:       []string{cfg.GraphScope},
	}
	return &graphMailServiceImpl{
		httpClient:    cc.Client(context.Background()),
		inbox:         cfg.SearchEmailInbox,
		senderFilter:  cfg.SearchEmailSender,
		subjectFilter: cfg.SearchEmailSubject,
		attachmentDir: cfg.AttachmentDir,
	}
}

// FetchLatestCSVAttachment looks for today's newest message matching the
// configured sender/subject filters and downloads its first CSV attachment.
// No matching message or attachment is not an error: the run simply has
// nothing to reconcile.
func (s *graphMailServiceImpl) FetchLatestCSVAttachment(ctx context.Context) (string, error) {
	todayStart := time.Now().UTC().Truncate(24 * time.Hour).Format("2006-01-02T15:04:05Z")

	filter := fmt.Sprintf("receivedDateTime ge %s", todayStart)
	if s.senderFilter != "" {
		filter += fmt.Sprintf(" and from/emailAddress/address eq '%s'", s.senderFilter)
	}
	if s.subjectFilter != "" {
		filter += fmt.Sprintf(" and contains(subject, '%s')", s.subjectFilter)
	}

	params := url.Values{}
	params.Set("$filter", filter)
	params.Set("$orderby", "receivedDateTime desc")
	params.Set("$top", "1")
	messagesURL := fmt.Sprintf("%s/users/%s/messages?%s", graphBaseURL, url.PathEscape(s.inbox), params.Encode())

	var messages graphMessageList
	if err := s.getJSON(ctx, messagesURL, &messages); err != nil {
		return "", fmt.Errorf("searching dispatch mailbox: %w", err)
	}
	if len(messages.Value) == 0 {
		logger.L.Info("No dispatch email found for today", "inbox", s.inbox, "filter", filter)
		return "", nil
	}
	message := messages.Value[0]
	logger.L.Info("Found dispatch email", "subject", message.Subject)

	attachmentsURL := fmt.Sprintf("%s/users/%s/messages/%s/attachments", graphBaseURL, url.PathEscape(s.inbox), message.ID)
	var attachments graphAttachmentList
	if err := s.getJSON(ctx, attachmentsURL, &attachments); err != nil {
		return "", fmt.Errorf("listing attachments: %w", err)
	}

	for _, att := range attachments.Value {
		if att.ODataType != "#microsoft.graph.fileAttachment" {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(att.Name), ".csv") {
			logger.L.Debug("Skipping non-CSV attachment", "name", att.Name)
			continue
		}
		content, err := base64.StdEncoding.DecodeString(att.ContentBytes)
		if err != nil {
			return "", fmt.Errorf("decoding attachment %s: %w", att.Name, err)
		}
		path := filepath.Join(s.attachmentDir, filepath.Base(att.Name))
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return "", fmt.Errorf("saving attachment %s: %w", att.Name, err)
		}
		logger.L.Info("Downloaded CSV attachment", "name", att.Name, "path", path)
		return path, nil
	}

	logger.L.Info("Dispatch email carried no CSV attachment", "subject", message.Subject)
	return "", nil
}

func (s *graphMailServiceImpl) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph request %s returned status %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
