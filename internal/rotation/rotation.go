// Package rotation computes round-robin duty schedules over a weekly
// recurring weekday and merges manual overrides onto them.
package rotation

import (
	"slices"
	"time"

	"github.com/diegoclair/friday-rota/internal/domain"
	"github.com/diegoclair/friday-rota/internal/domain/entity"
)

// NextDateOnOrAfter returns the earliest calendar date on or after d that falls on weekday.
func NextDateOnOrAfter(d time.Time, weekday time.Weekday) time.Time {
	d = startOfDay(d)
	daysAhead := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, daysAhead)
}

// DatesInRange returns every date in [from, to] falling on weekday, ascending.
func DatesInRange(from, to time.Time, weekday time.Weekday) []time.Time {
	to = startOfDay(to)

	var dates []time.Time
	for d := NextDateOnOrAfter(from, weekday); !d.After(to); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// BuildRotation assigns dates, in order, to members round-robin starting at
// startMember. An unknown startMember starts the rotation at the first member.
func BuildRotation(dates []time.Time, members []string, startMember string) entity.Schedule {
	schedule := entity.Schedule{}
	if len(members) == 0 {
		return schedule
	}

	startIdx := slices.Index(members, startMember)
	if startIdx < 0 {
		startIdx = 0
	}

	for i, d := range dates {
		schedule[d.Format(domain.DateLayout)] = members[(startIdx+i)%len(members)]
	}
	return schedule
}

// ApplyOverrides returns a copy of schedule with overrides applied.
// Overrides with an empty assignee or for dates outside the schedule are ignored.
func ApplyOverrides(schedule entity.Schedule, overrides map[string]string) entity.Schedule {
	out := schedule.Clone()
	for date, assignee := range overrides {
		if _, ok := out[date]; ok && assignee != "" {
			out[date] = assignee
		}
	}
	return out
}

// NextUpcomingDate returns the next weekday on or after today that is still
// within today's calendar year.
func NextUpcomingDate(today time.Time, weekday time.Weekday) (time.Time, bool) {
	dates := DatesInRange(today, endOfYear(today), weekday)
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[0], true
}

// YearSchedule computes the rotation from today until December 31 with the
// configured overrides applied.
func YearSchedule(cfg *entity.RotaConfig, today time.Time, weekday time.Weekday) entity.Schedule {
	dates := DatesInRange(today, endOfYear(today), weekday)
	base := BuildRotation(dates, cfg.Members, cfg.StartMember)
	return ApplyOverrides(base, cfg.Overrides)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
}
