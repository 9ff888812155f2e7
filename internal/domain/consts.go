package domain

import "time"

// DutyWeekday is the weekday the rota is computed over
const DutyWeekday = time.Friday

// DateLayout is the ISO 8601 calendar date format used for schedule keys and overrides
const DateLayout = "2006-01-02"

// DefaultMembers is the rotation used when no configuration file exists yet
var DefaultMembers = []string{"Chris", "Dylan", "Elizma", "Leo", "Oliver"}

// DefaultReminderCron fires every Wednesday at 09:00, two days ahead of the duty date
const DefaultReminderCron = "0 9 * * 3"

// DefaultConfigPath is where the rota configuration is persisted
const DefaultConfigPath = "data/rota_config.json"

// Reasons reported when a notification run had nothing to send
const (
	ReasonNoWebhook      = "no_webhook"
	ReasonNoUpcomingDate = "no_upcoming_date"
	ReasonNoAssignee     = "no_assignee"
)
