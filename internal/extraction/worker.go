package extraction

import (
	"context"
	"time"

	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"
)

const pollInterval = 2 * time.Second

// Run polls for queued jobs until the context is canceled.
func (s *Service) Run(ctx context.Context) {
	logx.Info().Msg("analysis worker started")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logx.Info().Msg("analysis worker stopped")
			return
		case <-ticker.C:
			if err := s.ProcessOne(ctx); err != nil {
				logx.Error().Err(err).Msg("analysis worker error")
			}
		}
	}
}

// StartWorker runs the poll loop on its own goroutine. Used when the
// worker is embedded in the API binary.
func StartWorker(ctx context.Context, service *Service) {
	go service.Run(ctx)
}
