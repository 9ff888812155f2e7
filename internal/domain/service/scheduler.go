package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// scheduler posts the upcoming duty reminder on a cron schedule
type scheduler struct {
	rota contract.RotaService
	cron *cron.Cron
	log  *logrus.Logger
	spec string
}

func newScheduler(rota contract.RotaService, log *logrus.Logger, spec string) (*scheduler, error) {
	s := &scheduler{
		rota: rota,
		cron: cron.New(cron.WithLogger(cron.PrintfLogger(log))),
		log:  log,
		spec: spec,
	}

	if _, err := s.cron.AddFunc(spec, s.remind); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	return s, nil
}

func (s *scheduler) Start() {
	s.log.WithField("spec", s.spec).Info("Scheduler starting...")
	s.cron.Start()
}

// Stop waits for a reminder that is already running to finish
func (s *scheduler) Stop() {
	s.log.Info("Scheduler stopping...")
	<-s.cron.Stop().Done()
}

func (s *scheduler) remind() {
	result, err := s.rota.NotifyNext(context.Background())
	if err != nil {
		s.log.WithError(err).Error("failed to send scheduled reminder")
		return
	}

	s.log.WithFields(logrus.Fields{
		"sent":     result.Sent,
		"date":     result.Date,
		"assignee": result.Assignee,
		"reason":   result.Reason,
	}).Info(result.Summary())
}
