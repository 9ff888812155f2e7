package service

import (
	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Instance struct {
	Rota      contract.RotaService
	Scheduler *scheduler
}

// NewRota builds the rota service alone, without the reminder scheduler
func NewRota(store contract.ConfigStore, notifier contract.Notifier, log *logrus.Logger) contract.RotaService {
	return newRota(store, notifier, log)
}

func NewInstance(store contract.ConfigStore, notifier contract.Notifier, log *logrus.Logger, reminderSpec string) (*Instance, error) {
	rotaService := newRota(store, notifier, log)

	sched, err := newScheduler(rotaService, log, reminderSpec)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Rota:      rotaService,
		Scheduler: sched,
	}, nil
}
