package contract

import (
	"context"

	"github.com/diegoclair/friday-rota/internal/domain/entity"
)

type RotaService interface {
	GetConfig() (*entity.RotaConfig, error)
	UpdateSettings(settings entity.Settings) (*entity.RotaConfig, error)
	Schedule() ([]entity.Assignment, error)
	NextAssignment() (*entity.Assignment, error)
	SetOverride(date, assignee string) error
	ClearOverride(date string) error
	ClearOverrides() error
	NotifyNext(ctx context.Context) (*entity.NotifyResult, error)
	NotifyDate(ctx context.Context, date string) (*entity.NotifyResult, error)
}
