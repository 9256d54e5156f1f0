package contrib

import (
	"context"
	"sync"

	"github.com/bnema/themehost/internal/logging"
	"github.com/rs/zerolog"
)

// Severity grades a diagnostic message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Message is one diagnostic reported against an extension's contribution.
type Message struct {
	Severity  Severity
	Extension string
	Point     string
	Text      string
}

// Collector gathers diagnostics for one (extension, point) pair.
// It is safe for concurrent use.
type Collector struct {
	extension string
	point     string
	logger    zerolog.Logger

	mu       sync.Mutex
	messages []Message
}

// NewCollector binds a collector to an extension and a point. The logger is
// taken from ctx.
func NewCollector(ctx context.Context, extension, point string) *Collector {
	return &Collector{
		extension: extension,
		point:     point,
		logger: logging.FromContext(ctx).With().
			Str("component", "contrib").
			Str("extension", extension).
			Str("point", point).
			Logger(),
	}
}

func (c *Collector) Extension() string { return c.extension }
func (c *Collector) Point() string { return c.point }

func (c *Collector) Error(msg string) { c.add(SeverityError, msg) }
func (c *Collector) Warn(msg string) { c.add(SeverityWarning, msg) }
func (c *Collector) Info(msg string) { c.add(SeverityInfo, msg) }

// Messages returns a copy of the reported diagnostics in report order.
func (c *Collector) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// HasErrors reports whether an error-severity message was collected.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (c *Collector) add(sev Severity, text string) {
	c.mu.Lock()
	c.messages = append(c.messages, Message{
		Severity:  sev,
		Extension: c.extension,
		Point:     c.point,
		Text:      text,
	})
	c.mu.Unlock()

	var ev *zerolog.Event
	switch sev {
	case SeverityError:
		ev = c.logger.Error()
	case SeverityWarning:
		ev = c.logger.Warn()
	default:
		ev = c.logger.Info()
	}
	ev.Msg(text)
}
