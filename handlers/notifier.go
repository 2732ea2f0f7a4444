package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"p9e.in/brandsurvey/config"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Notifier submits a best-effort email trigger to EmailJS for each new
// submission. Failures are logged and swallowed; callers run Send in its own
// goroutine after the HTTP response is written, so a client never observes
// the outcome.
type Notifier struct {
	settings *config.Settings
	client   *http.Client
	endpoint string
}

func NewNotifier(settings *config.Settings) *Notifier {
	return &Notifier{
		settings: settings,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: emailJSEndpoint,
	}
}

type emailPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the notification for one submission. When any of the three
// EmailJS identifiers is unset the call is skipped entirely.
func (n *Notifier) Send(surveyID uint, brandName string) {
	if !n.settings.NotificationConfigured() {
		return
	}

	if brandName == "" {
		brandName = "(not provided)"
	}

	payload := emailPayload{
		ServiceID:  n.settings.EmailJSServiceID,
		TemplateID: n.settings.EmailJSTemplateID,
		UserID:     n.settings.EmailJSUserID,
		TemplateParams: map[string]string{
			"survey_id":    strconv.FormatUint(uint64(surveyID), 10),
			"brand_name":   brandName,
			"message":      fmt.Sprintf("New survey submission #%d received", surveyID),
			"submitted_at": time.Now().Format(time.RFC1123),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode notification payload", "survey_id", surveyID, "error", err)
		return
	}

	resp, err := n.client.Post(n.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Warn("survey notification failed", "survey_id", surveyID, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Warn("survey notification rejected",
			"survey_id", surveyID,
			"status", resp.StatusCode,
			"body", string(detail),
		)
		return
	}

	slog.Info("survey notification sent", "survey_id", surveyID)
}
