package processor

import (
	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
	"github.com/nguyentantai21042004/wavshift/internal/media"
)

type implProcessor struct {
	cfg    *config.Config
	runner media.Runner
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, runner media.Runner, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		runner: runner,
		logger: log,
	}
}
