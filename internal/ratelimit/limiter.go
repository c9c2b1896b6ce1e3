package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/regenplastics/leads-platform/pkg/logging"
)

var tracer = otel.Tracer("github.com/regenplastics/leads-platform/internal/ratelimit")

// LimitError is a structured refusal from the limiter. Message is returned
// to the caller verbatim; Reason labels logs and metrics.
type LimitError struct {
	Reason  string
	Message string
}

func (e *LimitError) Error() string { return e.Message }

// RejectReason satisfies the shared reject-reason interface used by handlers.
func (e *LimitError) RejectReason() string { return e.Reason }

var (
	// ErrDuplicate means the same content fingerprint was seen within the
	// duplicate window.
	ErrDuplicate = &LimitError{Reason: "duplicate_submission", Message: "Duplicate submission detected. Please wait."}

	// ErrTooManyPerEmail means the sender exceeded the per-minute quota.
	ErrTooManyPerEmail = &LimitError{Reason: "too_many_per_email", Message: "Too many submissions for this email. Try again later."}

	// ErrServerBusy means the global per-minute ceiling was reached.
	ErrServerBusy = &LimitError{Reason: "server_busy", Message: "Server is busy. Please retry shortly."}
)

// Config contains the limiter thresholds and windows.
type Config struct {
	MaxPerEmail     int
	MaxGlobal       int
	DuplicateWindow time.Duration
	CounterWindow   time.Duration
}

// DefaultConfig mirrors the production limits: 3 per email per minute,
// 40 globally per minute, 120s duplicate suppression.
func DefaultConfig() Config {
	return Config{
		MaxPerEmail:     3,
		MaxGlobal:       40,
		DuplicateWindow: 120 * time.Second,
		CounterWindow:   60 * time.Second,
	}
}

// Limiter admits or rejects validated leads against the shared cache.
type Limiter struct {
	cache  SharedCache
	cfg    Config
	logger *logging.Logger
	now    func() time.Time
}

// NewLimiter creates a limiter over the given cache.
func NewLimiter(cache SharedCache, cfg Config, logger *logging.Logger) *Limiter {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxPerEmail == 0 && cfg.MaxGlobal == 0 {
		cfg = DefaultConfig()
	}
	return &Limiter{
		cache:  cache,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the limiter's notion of now. Test use only.
func (l *Limiter) SetClock(now func() time.Time) { l.now = now }

// Admit runs the three shared checks in order: duplicate fingerprint,
// per-sender counter, global counter. The duplicate flag is claimed with a
// single set-if-absent so racing identical submissions cannot both pass.
func (l *Limiter) Admit(ctx context.Context, name, email, phone, message string) error {
	ctx, span := tracer.Start(ctx, "ratelimit.admit")
	defer span.End()

	bucket := l.now().UTC().Format("200601021504")
	span.SetAttributes(attribute.String("ratelimit.bucket", bucket))

	fingerprint := digest(strings.Join([]string{name, email, phone, message}, "|"))
	claimed, err := l.cache.SetIfAbsent(ctx, "dup:"+fingerprint, "1", l.cfg.DuplicateWindow)
	if err != nil {
		return err
	}
	if !claimed {
		l.logger.Warn("duplicate submission suppressed", "fingerprint", fingerprint[:12])
		span.SetAttributes(attribute.String("ratelimit.rejected", ErrDuplicate.Reason))
		return ErrDuplicate
	}

	emailKey := "rl:email:" + digest(email) + ":" + bucket
	count, err := l.cache.Increment(ctx, emailKey, l.cfg.CounterWindow)
	if err != nil {
		return err
	}
	if count > int64(l.cfg.MaxPerEmail) {
		l.logger.Warn("per-email rate exceeded", "email", email, "count", count, "max", l.cfg.MaxPerEmail)
		span.SetAttributes(attribute.String("ratelimit.rejected", ErrTooManyPerEmail.Reason))
		return ErrTooManyPerEmail
	}

	globalCount, err := l.cache.Increment(ctx, "rl:global:"+bucket, l.cfg.CounterWindow)
	if err != nil {
		return err
	}
	if globalCount > int64(l.cfg.MaxGlobal) {
		l.logger.Warn("global rate exceeded", "count", globalCount, "max", l.cfg.MaxGlobal)
		span.SetAttributes(attribute.String("ratelimit.rejected", ErrServerBusy.Reason))
		return ErrServerBusy
	}

	return nil
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
