package handlers

import (
	"context"

	"francoggm/emipay-gateway-go/internal/app/directory"
	"francoggm/emipay-gateway-go/internal/app/workflow"
	"francoggm/emipay-gateway-go/internal/config"
	"francoggm/emipay-gateway-go/internal/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	cfg       *config.Config
	directory *directory.ViewModel
	machine   *workflow.Machine
	ledger    Pinger
	log       *logger.Logger
}

func NewHandlers(cfg *config.Config, directory *directory.ViewModel, machine *workflow.Machine, ledger Pinger, log *logger.Logger) *Handlers {
	return &Handlers{
		cfg:       cfg,
		directory: directory,
		machine:   machine,
		ledger:    ledger,
		log:       log,
	}
}
