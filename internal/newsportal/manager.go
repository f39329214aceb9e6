package newsportal

import (
	"context"
	"log/slog"
	"time"
)

// Limits tunes the engines. Zero fields fall back to DefaultLimits.
type Limits struct {
	HighlightPosts int
	TopBanners     int

	// RecorderTimeout bounds how long a request waits for the event recorder.
	RecorderTimeout time.Duration
}

func DefaultLimits() Limits {
	return Limits{
		HighlightPosts:  4,
		TopBanners:      5,
		RecorderTimeout: 500 * time.Millisecond,
	}
}

type Manager struct {
	store     Store
	report    BannerReport
	recorder  EventRecorder
	publisher Publisher
	log       *slog.Logger
	limits    Limits
	now       func() time.Time
}

type Option func(*Manager)

func WithReport(report BannerReport) Option {
	return func(m *Manager) { m.report = report }
}

func WithRecorder(recorder EventRecorder) Option {
	return func(m *Manager) { m.recorder = recorder }
}

func WithPublisher(publisher Publisher) Option {
	return func(m *Manager) { m.publisher = publisher }
}

func WithLimits(limits Limits) Option {
	return func(m *Manager) {
		if limits.HighlightPosts > 0 {
			m.limits.HighlightPosts = limits.HighlightPosts
		}
		if limits.TopBanners > 0 {
			m.limits.TopBanners = limits.TopBanners
		}
		if limits.RecorderTimeout > 0 {
			m.limits.RecorderTimeout = limits.RecorderTimeout
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store Store, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		log:    log,
		limits: DefaultLimits(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// publish sends an article event without failing the caller's write.
func (m *Manager) publish(ctx context.Context, event ArticleEvent) {
	if m.publisher == nil {
		return
	}

	event.Timestamp = m.now()
	if err := m.publisher.PublishArticleEvent(ctx, event); err != nil {
		sideChannelFailures.WithLabelValues("publisher").Inc()
		m.log.WarnContext(ctx, "failed to publish article event",
			"action", event.Action, "articleId", event.ArticleID, "error", err)
	}
}

// record runs a recorder call detached from the request cancellation and waits at
// most RecorderTimeout for it. Failures and timeouts are logged and dropped.
func (m *Manager) record(ctx context.Context, msg string, fn func(context.Context) error, attrs ...any) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.limits.RecorderTimeout)

	done := make(chan error, 1)
	go func() {
		defer cancel()
		done <- fn(rctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-rctx.Done():
		// cancel also fires once fn has returned and sent its result
		select {
		case err = <-done:
		default:
			err = rctx.Err()
		}
	}
	if err == nil {
		return
	}

	sideChannelFailures.WithLabelValues("recorder").Inc()
	m.log.WarnContext(ctx, msg, append(attrs, "error", err)...)
}
