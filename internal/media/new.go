package media

import (
	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
	"github.com/nguyentantai21042004/wavshift/pkg/executor"
)

type implRunner struct {
	ffmpegPath string
	probe      config.ProbeConfig
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a new Runner instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Runner {
	return &implRunner{
		ffmpegPath: cfg.FFmpeg.BinaryPath,
		probe:      cfg.Probe,
		executor:   exec,
		logger:     log,
	}
}
