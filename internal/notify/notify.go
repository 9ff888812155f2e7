// Package notify formats duty reminders and posts them to a Slack incoming webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/slack-go/slack"
)

// DefaultTimeout bounds a single webhook call
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept in the error
const maxErrorBody = 4 << 10

// HTTPError is returned when the webhook answers with a status >= 300
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("slack webhook error: %d %s", e.StatusCode, e.Body)
}

// FormatMention renders name as a Slack user mention when it has a known ID
func FormatMention(name string, idMap map[string]string) string {
	if id := idMap[name]; id != "" {
		return fmt.Sprintf("<@%s>", id)
	}
	return name
}

// BuildMessage renders the duty reminder for assignee on dateISO
func BuildMessage(assignee, dateISO string, idMap map[string]string) string {
	target := FormatMention(assignee, idMap)
	return fmt.Sprintf("Heads up %s! You're on *Friday lead-check rota* for *%s*\n"+
		"Please confirm you've scheduled your checks. Thanks!", target, dateISO)
}

type webhookClient struct {
	httpClient *http.Client
}

// New returns a Notifier posting to Slack incoming webhooks.
// Each call is a single attempt bounded by timeout.
func New(timeout time.Duration) contract.Notifier {
	return &webhookClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *webhookClient) Send(ctx context.Context, webhookURL, text string) error {
	payload, err := json.Marshal(&slack.WebhookMessage{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
