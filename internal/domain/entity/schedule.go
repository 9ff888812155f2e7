package entity

import (
	"fmt"
	"sort"

	"github.com/diegoclair/friday-rota/internal/domain"
)

// Schedule maps an ISO date to the member on duty that day
type Schedule map[string]string

// Dates returns the schedule keys in ascending order.
// ISO dates sort lexically in calendar order.
func (s Schedule) Dates() []string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for date, assignee := range s {
		out[date] = assignee
	}
	return out
}

type Assignment struct {
	Date       string `json:"date"`
	Assignee   string `json:"assignee"`
	Overridden bool   `json:"overridden"`
}

// NotifyResult describes the outcome of a notification run.
// Reason is set when nothing was sent.
type NotifyResult struct {
	Sent     bool   `json:"sent"`
	Date     string `json:"date,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (r NotifyResult) Summary() string {
	if r.Sent {
		return fmt.Sprintf("Sent Slack notification for %s to %s.", r.Date, r.Assignee)
	}

	switch r.Reason {
	case domain.ReasonNoWebhook:
		return "No Slack webhook configured. Skipping."
	case domain.ReasonNoUpcomingDate:
		return "No upcoming Fridays in current year."
	case domain.ReasonNoAssignee:
		return fmt.Sprintf("No assignee for %s.", r.Date)
	default:
		return "Nothing sent."
	}
}
