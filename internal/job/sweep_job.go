package job

import (
	"context"

	"go.uber.org/zap"

	"fallapp-api/internal/service"
)

// SweepJob re-queues comments whose classification was dropped or
// skipped, so a full queue or a missing API token never strands them.
type SweepJob struct {
	commentService service.CommentService
	logger         *zap.Logger
}

// NewSweepJob creates a new SweepJob instance
func NewSweepJob(commentService service.CommentService, logger *zap.Logger) *SweepJob {
	return &SweepJob{
		commentService: commentService,
		logger:         logger,
	}
}

// Run executes one backlog sweep
func (j *SweepJob) Run() {
	ctx := context.Background()

	result, err := j.commentService.ReprocessPending(ctx)
	if err != nil {
		j.logger.Error("Sentiment backlog sweep failed", zap.Error(err))
		return
	}

	if result.ComentariosEncolados > 0 {
		j.logger.Info("Sentiment backlog sweep completed",
			zap.Int("enqueued", result.ComentariosEncolados),
		)
	}
}
