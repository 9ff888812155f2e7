package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diegoclair/friday-rota/internal/domain"
	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/diegoclair/friday-rota/internal/domain/entity"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/diegoclair/friday-rota/internal/rotation"
	"github.com/sirupsen/logrus"
)

type rotaService struct {
	store    contract.ConfigStore
	notifier contract.Notifier
	log      *logrus.Logger
	weekday  time.Weekday
	now      func() time.Time
}

func newRota(store contract.ConfigStore, notifier contract.Notifier, log *logrus.Logger) *rotaService {
	return &rotaService{
		store:    store,
		notifier: notifier,
		log:      log,
		weekday:  domain.DutyWeekday,
		now:      time.Now,
	}
}

func (s *rotaService) GetConfig() (*entity.RotaConfig, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (s *rotaService) UpdateSettings(settings entity.Settings) (*entity.RotaConfig, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	members := cleanMembers(settings.Members)
	startMember := strings.TrimSpace(settings.StartMember)

	switch {
	case len(members) == 0:
		// a blank member list keeps the current rota
		members = cfg.Members
		if !slices.Contains(members, startMember) {
			startMember = cfg.StartMember
		}
	case !slices.Contains(members, startMember):
		startMember = members[0]
	}

	idMap := make(map[string]string, len(settings.SlackIDMap))
	for name, id := range settings.SlackIDMap {
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if name != "" && id != "" {
			idMap[name] = id
		}
	}

	cfg.Members = members
	cfg.StartMember = startMember
	cfg.SlackWebhookURL = strings.TrimSpace(settings.SlackWebhookURL)
	cfg.SlackIDMap = idMap

	if err := s.store.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"members":      len(cfg.Members),
		"start_member": cfg.StartMember,
	}).Info("rota settings updated")

	return cfg, nil
}

func (s *rotaService) Schedule() ([]entity.Assignment, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	schedule := rotation.YearSchedule(cfg, s.now(), s.weekday)

	assignments := make([]entity.Assignment, 0, len(schedule))
	for _, date := range schedule.Dates() {
		assignments = append(assignments, entity.Assignment{
			Date:       date,
			Assignee:   schedule[date],
			Overridden: cfg.Overrides[date] != "",
		})
	}

	return assignments, nil
}

func (s *rotaService) NextAssignment() (*entity.Assignment, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	today := s.now()
	upcoming, ok := rotation.NextUpcomingDate(today, s.weekday)
	if !ok {
		return nil, domain.ErrNoUpcomingDate
	}

	key := upcoming.Format(domain.DateLayout)
	schedule := rotation.YearSchedule(cfg, today, s.weekday)
	assignee := schedule[key]
	if assignee == "" {
		return nil, fmt.Errorf("%w %s", domain.ErrNoAssignee, key)
	}

	return &entity.Assignment{
		Date:       key,
		Assignee:   assignee,
		Overridden: cfg.Overrides[key] != "",
	}, nil
}

// SetOverride stores a manual assignee for date. An empty assignee removes the override.
func (s *rotaService) SetOverride(date, assignee string) error {
	if _, err := parseDate(date); err != nil {
		return err
	}

	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return s.ClearOverride(date)
	}

	cfg, err := s.GetConfig()
	if err != nil {
		return err
	}

	cfg.Overrides[date] = assignee
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}

	s.log.WithFields(logrus.Fields{"date": date, "assignee": assignee}).Info("override saved")
	return nil
}

func (s *rotaService) ClearOverride(date string) error {
	if _, err := parseDate(date); err != nil {
		return err
	}

	cfg, err := s.GetConfig()
	if err != nil {
		return err
	}

	if _, ok := cfg.Overrides[date]; !ok {
		return nil
	}

	delete(cfg.Overrides, date)
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("failed to clear override: %w", err)
	}

	s.log.WithField("date", date).Info("override cleared")
	return nil
}

func (s *rotaService) ClearOverrides() error {
	cfg, err := s.GetConfig()
	if err != nil {
		return err
	}

	cfg.Overrides = map[string]string{}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("failed to clear overrides: %w", err)
	}

	s.log.Info("all overrides cleared")
	return nil
}

// NotifyNext sends the reminder for the next upcoming duty date.
// Nothing to send is not an error: the result carries the reason instead.
func (s *rotaService) NotifyNext(ctx context.Context) (*entity.NotifyResult, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	if cfg.SlackWebhookURL == "" {
		return &entity.NotifyResult{Reason: domain.ReasonNoWebhook}, nil
	}

	today := s.now()
	schedule := rotation.YearSchedule(cfg, today, s.weekday)

	upcoming, ok := rotation.NextUpcomingDate(today, s.weekday)
	if !ok {
		return &entity.NotifyResult{Reason: domain.ReasonNoUpcomingDate}, nil
	}

	key := upcoming.Format(domain.DateLayout)
	assignee := schedule[key]
	if assignee == "" {
		return &entity.NotifyResult{Date: key, Reason: domain.ReasonNoAssignee}, nil
	}

	return s.send(ctx, cfg, key, assignee)
}

// NotifyDate sends the reminder for a specific scheduled date on demand
func (s *rotaService) NotifyDate(ctx context.Context, date string) (*entity.NotifyResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	if cfg.SlackWebhookURL == "" {
		return nil, domain.ErrWebhookNotConfigured
	}

	schedule := rotation.YearSchedule(cfg, s.now(), s.weekday)
	assignee := schedule[date]
	if assignee == "" {
		return nil, fmt.Errorf("%w %s", domain.ErrNoAssignee, date)
	}

	return s.send(ctx, cfg, date, assignee)
}

func (s *rotaService) send(ctx context.Context, cfg *entity.RotaConfig, date, assignee string) (*entity.NotifyResult, error) {
	text := notify.BuildMessage(assignee, date, cfg.SlackIDMap)
	if err := s.notifier.Send(ctx, cfg.SlackWebhookURL, text); err != nil {
		return nil, fmt.Errorf("failed to send Slack notification for %s: %w", date, err)
	}

	s.log.WithFields(logrus.Fields{"date": date, "assignee": assignee}).Info("slack notification sent")

	return &entity.NotifyResult{Sent: true, Date: date, Assignee: assignee}, nil
}

// cleanMembers trims names and drops blanks and duplicates, keeping first-seen order
func cleanMembers(input []string) []string {
	members := make([]string, 0, len(input))
	for _, name := range input {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(members, name) {
			continue
		}
		members = append(members, name)
	}
	return members
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, value)
	}
	return d, nil
}
