package contract

import "context"

// Notifier defines the interface for posting messages to a Slack incoming webhook
// This allows mocking in tests while keeping the real implementation simple
type Notifier interface {
	Send(ctx context.Context, webhookURL, text string) error
}
