package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"shaktichain/internal/feedback"
)

// Controller owns the State for one program run.
// It is not safe for concurrent use; Bubble Tea calls it from its update
// loop only.
type Controller struct {
	state  State
	now    func() time.Time
	logger zerolog.Logger
	tracer oteltrace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used to stamp submissions.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the transition logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithTracer sets the tracer used for one span per dispatch.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// NewController starts at the landing view with seed as the feedback list.
func NewController(seed feedback.Sequence, opts ...Option) *Controller {
	c := &Controller{
		state:  NewState(seed),
		now:    time.Now,
		logger: zerolog.Nop(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch runs a through Reduce and keeps the result.
func (c *Controller) Dispatch(ctx context.Context, a Action) (Outcome, error) {
	if sf, ok := a.(SubmitFeedback); ok && sf.At.IsZero() {
		sf.At = c.now()
		a = sf
	}

	from := c.state.View
	_, span := c.tracer.Start(ctx, "app.dispatch",
		oteltrace.WithAttributes(
			attribute.String("shaktichain.action", actionName(a)),
			attribute.String("shaktichain.view.from", from.String()),
		))
	defer span.End()

	next, out, err := Reduce(c.state, a)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		ev := c.logger.Warn()
		if errors.Is(err, feedback.ErrEmptyFeedback) {
			ev = c.logger.Info()
		}
		ev.Err(err).Str("action", actionName(a)).Str("view", from.String()).Msg("action rejected")
		return out, err
	}
	c.state = next

	span.SetAttributes(attribute.String("shaktichain.view.to", next.View.String()))
	if out.Submitted != nil {
		span.SetAttributes(
			attribute.String("shaktichain.feedback.category", out.Submitted.Category.String()),
			attribute.Int64("shaktichain.feedback.id", out.Submitted.ID),
		)
	}

	c.logger.Debug().
		Str("action", actionName(a)).
		Str("from", from.String()).
		Str("to", next.View.String()).
		Int("entries", next.Feedback.Len()).
		Msg("transition")
	return out, nil
}

// Navigate sets the active view.
func (c *Controller) Navigate(ctx context.Context, v View) (Outcome, error) {
	return c.Dispatch(ctx, Navigate{To: v})
}

// SelectRole navigates to the individual form or the organization login.
func (c *Controller) SelectRole(ctx context.Context, r Role) (Outcome, error) {
	return c.Dispatch(ctx, SelectRole{Role: r})
}

// SubmitFeedback appends an entry stamped with the controller clock.
func (c *Controller) SubmitFeedback(ctx context.Context, text string, cat feedback.Category) (Outcome, error) {
	return c.Dispatch(ctx, SubmitFeedback{Text: text, Category: cat})
}

// Login accepts any credentials and opens the dashboard.
func (c *Controller) Login(ctx context.Context, email, password string) (Outcome, error) {
	return c.Dispatch(ctx, Login{Email: email, Password: password})
}

func actionName(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.Name()
}
