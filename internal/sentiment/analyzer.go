package sentiment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/metrics"
)

// CommentStore is the slice of comment persistence the analyzer needs
type CommentStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateSentiment(ctx context.Context, id uuid.UUID, sentiment string) error
}

type task struct {
	commentID uuid.UUID
	text      string
}

// Analyzer classifies comment text asynchronously on a fixed pool of
// workers fed by a bounded queue. Enqueue never blocks the caller:
// when the queue is full the task is dropped and the comment stays
// pending until a backlog sweep picks it up again.
type Analyzer struct {
	classifier Classifier
	store      CommentStore
	token      string
	timeout    time.Duration
	queue      chan task
	wg         sync.WaitGroup
	mu         sync.RWMutex
	closed     bool
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewAnalyzer creates the analyzer and starts its worker pool
func NewAnalyzer(classifier Classifier, store CommentStore, token string, workers, queueSize int, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Analyzer {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	a := &Analyzer{
		classifier: classifier,
		store:      store,
		token:      token,
		timeout:    timeout,
		queue:      make(chan task, queueSize),
		logger:     logger,
		metrics:    m,
	}

	a.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go a.worker()
	}

	logger.Info("Sentiment analyzer started",
		zap.Int("workers", workers),
		zap.Int("queue_size", queueSize),
	)

	return a
}

// Enqueue schedules a comment for classification. Returns false when
// the task was dropped because the queue is full or the analyzer is
// shutting down.
func (a *Analyzer) Enqueue(commentID uuid.UUID, text string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return false
	}

	select {
	case a.queue <- task{commentID: commentID, text: text}:
		if a.metrics != nil {
			a.metrics.SetSentimentQueueDepth(len(a.queue))
		}
		return true
	default:
		a.logger.Warn("Sentiment queue full, dropping task",
			zap.String("comment_id", commentID.String()),
		)
		if a.metrics != nil {
			a.metrics.IncrementSentimentDropped()
		}
		return false
	}
}

// QueueDepth reports how many tasks are waiting for a worker
func (a *Analyzer) QueueDepth() int {
	return len(a.queue)
}

// Close stops accepting new tasks and waits for the queued ones to
// finish.
func (a *Analyzer) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info("Sentiment analyzer stopped")
}

func (a *Analyzer) worker() {
	defer a.wg.Done()
	for t := range a.queue {
		if a.metrics != nil {
			a.metrics.SetSentimentQueueDepth(len(a.queue))
		}
		a.process(t)
	}
}

// process runs a single classification. Every failure is logged and
// swallowed so one bad task never takes a worker down or surfaces to
// the request path; the comment just stays pending.
func (a *Analyzer) process(t task) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Sentiment worker panic recovered",
				zap.String("comment_id", t.commentID.String()),
				zap.Any("panic", r),
			)
		}
	}()

	if a.token == "" {
		a.logger.Debug("Classifier token not configured, skipping analysis",
			zap.String("comment_id", t.commentID.String()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	scores, err := a.classifier.Classify(ctx, t.text)
	if err != nil {
		a.logger.Warn("Sentiment classification failed",
			zap.String("comment_id", t.commentID.String()),
			zap.Error(err),
		)
		if a.metrics != nil {
			a.metrics.IncrementSentimentFailure()
		}
		return
	}
	if len(scores) == 0 {
		a.logger.Warn("Classifier response carried no usable scores",
			zap.String("comment_id", t.commentID.String()),
		)
		if a.metrics != nil {
			a.metrics.IncrementSentimentFailure()
		}
		return
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Confidence > best.Confidence {
			best = s
		}
	}
	label := NormalizeLabel(best.Label)

	// Re-fetch before writing: the comment may have been deleted while
	// the task was queued.
	comment, err := a.store.FindByID(ctx, t.commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.logger.Debug("Comment gone before classification finished",
				zap.String("comment_id", t.commentID.String()),
			)
		} else {
			a.logger.Warn("Failed to re-fetch comment for sentiment update",
				zap.String("comment_id", t.commentID.String()),
				zap.Error(err),
			)
		}
		return
	}

	if err := a.store.UpdateSentiment(ctx, comment.ID, label); err != nil {
		a.logger.Warn("Failed to persist sentiment",
			zap.String("comment_id", t.commentID.String()),
			zap.Error(err),
		)
		if a.metrics != nil {
			a.metrics.IncrementSentimentFailure()
		}
		return
	}

	if a.metrics != nil {
		a.metrics.IncrementSentimentAnalyzed(label)
	}
	a.logger.Info("Comment sentiment stored",
		zap.String("comment_id", t.commentID.String()),
		zap.String("sentiment", label),
		zap.Float64("confidence", best.Confidence),
	)
}

// NormalizeLabel maps the many label spellings classifiers emit onto
// the canonical positive/neutral/negative set. Star-rating labels map
// by rating, substring matches cover English and Spanish variants, and
// anything unrecognized passes through lowercased so it is still
// visible in reports.
func NormalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(label, "star") || strings.Contains(label, "estrella") {
		for _, r := range label {
			if unicode.IsDigit(r) {
				switch r {
				case '4', '5':
					return domain.SentimentPositive
				case '3':
					return domain.SentimentNeutral
				case '1', '2':
					return domain.SentimentNegative
				}
				break
			}
		}
	}

	switch {
	case strings.Contains(label, "pos"):
		return domain.SentimentPositive
	case strings.Contains(label, "neu"):
		return domain.SentimentNeutral
	case strings.Contains(label, "neg"):
		return domain.SentimentNegative
	}

	return label
}
