// Package explorer runs the interactive question-and-answer loop over one record source.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"bikeshare-explorer/internal/dataset"
	"bikeshare-explorer/internal/observability"
	"bikeshare-explorer/internal/prompt"
	"bikeshare-explorer/internal/reporting"
	"bikeshare-explorer/internal/session"
)

// DefaultPageSize is the number of raw rows shown per request.
const DefaultPageSize = 5

// Explorer asks for a city and filters, then offers each statistic group in turn.
type Explorer struct {
	loader   *dataset.Loader
	prompter *prompt.Prompter
	renderer *reporting.TextRenderer
	out      io.Writer

	pageSize int
	metrics  *observability.Metrics
	logger   *log.Logger
}

// New creates an explorer that prompts through p and writes results to out.
func New(loader *dataset.Loader, p *prompt.Prompter, out io.Writer) *Explorer {
	return &Explorer{
		loader:   loader,
		prompter: p,
		renderer: reporting.NewTextRenderer(out, true),
		out:      out,
		pageSize: DefaultPageSize,
		logger:   log.New(io.Discard, "", 0),
	}
}

// WithPageSize sets how many raw rows are shown per request.
func (e *Explorer) WithPageSize(n int) *Explorer {
	if n > 0 {
		e.pageSize = n
	}
	return e
}

// WithMetrics passes metrics to every session.
func (e *Explorer) WithMetrics(m *observability.Metrics) *Explorer {
	e.metrics = m
	return e
}

// WithLogger sets the logger passed to every session.
func (e *Explorer) WithLogger(l *log.Logger) *Explorer {
	if l != nil {
		e.logger = l
	}
	return e
}

// Run repeats iterations until the user declines to restart or input ends.
// A dataset that fails to load ends the current iteration, not the loop.
func (e *Explorer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := e.iterate(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			fmt.Fprintf(e.out, "Could not analyse this selection: %v\n", err)
		}

		restart, err := e.prompter.Confirm("\nWould you like to restart?")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// iterate runs one city/filter selection through every gated group.
func (e *Explorer) iterate(ctx context.Context) error {
	city, filter, err := e.prompter.Filters()
	if err != nil {
		return err
	}

	s, err := session.Open(ctx, e.loader, city, filter,
		session.WithMetrics(e.metrics),
		session.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	if ok, err := e.prompter.Confirm("\nWould you like to see the time stats?"); err != nil {
		return err
	} else if ok {
		e.renderer.Temporal(s.Temporal())
	}

	if err := e.rawRows(s); err != nil {
		return err
	}

	if ok, err := e.prompter.Confirm("\nWould you like to see the station stats?"); err != nil {
		return err
	} else if ok {
		e.renderer.Stations(s.Stations())
	}

	if ok, err := e.prompter.Confirm("\nWould you like to see the trip duration stats?"); err != nil {
		return err
	} else if ok {
		e.renderer.Durations(s.Durations())
	}

	if ok, err := e.prompter.Confirm("\nWould you like to see the user stats?"); err != nil {
		return err
	} else if ok {
		e.renderer.Users(s.Users())
	}
	return nil
}

// rawRows pages through filtered trips while the user keeps asking for more.
func (e *Explorer) rawRows(s *session.Session) error {
	question := fmt.Sprintf("\nWould you like to see the first %d rows of trip data?", e.pageSize)
	for offset := 0; ; offset += e.pageSize {
		ok, err := e.prompter.Confirm(question)
		if err != nil || !ok {
			return err
		}

		page := s.RawTrips(offset, e.pageSize)
		e.renderer.RawTrips(offset, page)
		if len(page) < e.pageSize {
			return nil
		}
		question = fmt.Sprintf("\nWould you like to see another %d rows of trip data?", e.pageSize)
	}
}
