package domain

import "errors"

var (
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNoUpcomingDate       = errors.New("no upcoming duty dates left this year")
	ErrNoAssignee           = errors.New("no assignee for date")
	ErrWebhookNotConfigured = errors.New("slack webhook is not configured")
	ErrEmptyAssignee        = errors.New("assignee cannot be empty")
)
