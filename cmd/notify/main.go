// Command notify posts the Slack reminder for the next Friday on the rota.
// It is meant to be run by an external scheduler and always exits 0.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/diegoclair/friday-rota/internal/config"
	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/diegoclair/friday-rota/internal/domain/service"
	"github.com/diegoclair/friday-rota/internal/logger"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/diegoclair/friday-rota/internal/storage"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	run(context.Background(), newRota(cfg, log), os.Stdout)
}

// newRota ignores the reminder cron setting, which only the bot uses
func newRota(cfg *config.Config, log *logrus.Logger) contract.RotaService {
	store := storage.New(cfg.ConfigPath, cfg.DefaultMembers)
	return service.NewRota(store, notify.New(notify.DefaultTimeout), log)
}

func run(ctx context.Context, rota contract.RotaService, out io.Writer) {
	result, err := rota.NotifyNext(ctx)
	if err != nil {
		fmt.Fprintf(out, "Failed to send Slack notification: %v\n", err)
		return
	}

	fmt.Fprintln(out, result.Summary())
}
