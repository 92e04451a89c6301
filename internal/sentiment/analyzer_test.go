package sentiment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

type fakeClassifier struct {
	mu     sync.Mutex
	calls  int
	scores []Score
	err    error
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) ([]Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.scores, f.err
}

func (f *fakeClassifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStore struct {
	mu         sync.Mutex
	comments   map[uuid.UUID]*domain.Comment
	sentiments map[uuid.UUID]string
	updateErr  error
}

func newFakeStore(comments ...*domain.Comment) *fakeStore {
	s := &fakeStore{
		comments:   make(map[uuid.UUID]*domain.Comment),
		sentiments: make(map[uuid.UUID]string),
	}
	for _, c := range comments {
		s.comments[c.ID] = c
	}
	return s
}

func (s *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *fakeStore) UpdateSentiment(ctx context.Context, id uuid.UUID, sentiment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.sentiments[id] = sentiment
	return nil
}

func (s *fakeStore) sentimentOf(id uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sentiments[id]
	return v, ok
}

func testComment(id uuid.UUID) *domain.Comment {
	c := &domain.Comment{Content: "magnifica falla"}
	c.ID = id
	return c
}

func newTestAnalyzer(classifier Classifier, store CommentStore, token string) *Analyzer {
	return NewAnalyzer(classifier, store, token, 1, 8, time.Second, zap.NewNop(), nil)
}

func TestAnalyzerStoresBestLabel(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(testComment(id))
	classifier := &fakeClassifier{scores: []Score{
		{Label: "negative", Confidence: 0.10},
		{Label: "positive", Confidence: 0.85},
		{Label: "neutral", Confidence: 0.05},
	}}

	a := newTestAnalyzer(classifier, store, "token")
	require.True(t, a.Enqueue(id, "magnifica falla"))
	a.Close()

	got, ok := store.sentimentOf(id)
	require.True(t, ok)
	assert.Equal(t, domain.SentimentPositive, got)
}

func TestAnalyzerSkipsWithoutToken(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(testComment(id))
	classifier := &fakeClassifier{scores: []Score{{Label: "positive", Confidence: 0.9}}}

	a := newTestAnalyzer(classifier, store, "")
	require.True(t, a.Enqueue(id, "magnifica falla"))
	a.Close()

	assert.Equal(t, 0, classifier.callCount())
	_, ok := store.sentimentOf(id)
	assert.False(t, ok)
}

func TestAnalyzerSwallowsClassifierError(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(testComment(id))
	classifier := &fakeClassifier{err: assert.AnError}

	a := newTestAnalyzer(classifier, store, "token")
	require.True(t, a.Enqueue(id, "magnifica falla"))
	a.Close()

	_, ok := store.sentimentOf(id)
	assert.False(t, ok)
}

func TestAnalyzerSwallowsEmptyScores(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(testComment(id))
	classifier := &fakeClassifier{scores: nil}

	a := newTestAnalyzer(classifier, store, "token")
	require.True(t, a.Enqueue(id, "magnifica falla"))
	a.Close()

	_, ok := store.sentimentOf(id)
	assert.False(t, ok)
}

func TestAnalyzerSkipsDeletedComment(t *testing.T) {
	store := newFakeStore()
	classifier := &fakeClassifier{scores: []Score{{Label: "positive", Confidence: 0.9}}}

	a := newTestAnalyzer(classifier, store, "token")
	require.True(t, a.Enqueue(uuid.New(), "magnifica falla"))
	a.Close()

	assert.Empty(t, store.sentiments)
}

func TestAnalyzerSwallowsUpdateError(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(testComment(id))
	store.updateErr = assert.AnError
	classifier := &fakeClassifier{scores: []Score{{Label: "positive", Confidence: 0.9}}}

	a := newTestAnalyzer(classifier, store, "token")
	require.True(t, a.Enqueue(id, "magnifica falla"))
	a.Close()

	_, ok := store.sentimentOf(id)
	assert.False(t, ok)
}

type blockingClassifier struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingClassifier) Classify(ctx context.Context, text string) ([]Score, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil, assert.AnError
}

func TestAnalyzerDropsWhenQueueFull(t *testing.T) {
	store := newFakeStore()
	classifier := &blockingClassifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	a := NewAnalyzer(classifier, store, "token", 1, 1, time.Second, zap.NewNop(), nil)

	// Occupy the single worker, then fill the one queue slot. The next
	// enqueue has nowhere to go and must be dropped.
	require.True(t, a.Enqueue(uuid.New(), "text"))
	<-classifier.started
	require.True(t, a.Enqueue(uuid.New(), "text"))

	assert.False(t, a.Enqueue(uuid.New(), "text"))

	close(classifier.release)
	a.Close()
}

func TestAnalyzerRejectsAfterClose(t *testing.T) {
	store := newFakeStore()
	a := newTestAnalyzer(&fakeClassifier{}, store, "token")
	a.Close()

	assert.False(t, a.Enqueue(uuid.New(), "text"))
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"positive", domain.SentimentPositive},
		{"POSITIVE", domain.SentimentPositive},
		{"positivo", domain.SentimentPositive},
		{"neutral", domain.SentimentNeutral},
		{"neutro", domain.SentimentNeutral},
		{"negative", domain.SentimentNegative},
		{"negativo", domain.SentimentNegative},
		{"LABEL_2 positive", domain.SentimentPositive},
		{"5 stars", domain.SentimentPositive},
		{"4 stars", domain.SentimentPositive},
		{"3 stars", domain.SentimentNeutral},
		{"2 stars", domain.SentimentNegative},
		{"1 star", domain.SentimentNegative},
		{"5 estrellas", domain.SentimentPositive},
		{"  Positive  ", domain.SentimentPositive},
		{"joy", "joy"},
		{"LABEL_7", "label_7"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLabel(tt.raw))
		})
	}
}
