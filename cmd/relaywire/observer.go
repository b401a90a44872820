package main

import (
	"relaywire/internal/task"

	"go.uber.org/zap"
)

// zapObserver logs task lifecycle events. The runner itself never logs; this
// is the only place run progress reaches the log.
type zapObserver struct {
	logger *zap.Logger
}

func (o *zapObserver) TaskStarted(label string) {
	o.logger.Debug("task started", zap.String("task", label))
}

func (o *zapObserver) TaskFinished(label string, out task.Outcome) {
	switch out.Status {
	case task.StatusSucceeded:
		o.logger.Info("task succeeded", zap.String("task", label))
	case task.StatusSkipped:
		o.logger.Info("task skipped", zap.String("task", label), zap.String("reason", out.Reason))
	case task.StatusFailed:
		o.logger.Error("task failed", zap.String("task", label), zap.Error(out.Err))
	}
}
