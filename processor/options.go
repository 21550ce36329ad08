package processor

import (
	"io"
	"log/slog"
)

const (
	// DefaultTitle is the title of the top-level menu.
	DefaultTitle = "Numeric Matrix Processor"

	panicLoggerNil = "processor: WithLogger: logger must not be nil"
	panicTitle     = "processor: WithTitle: title must not be empty"
)

// Option configures a Processor. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	logger *slog.Logger
	title  string
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		title:  DefaultTitle,
	}
}

// WithLogger routes operation logs to l. By default logs are discarded.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithTitle overrides the top-level menu title (used in logs).
func WithTitle(title string) Option {
	if title == "" {
		panic(panicTitle)
	}

	return func(o *options) { o.title = title }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
