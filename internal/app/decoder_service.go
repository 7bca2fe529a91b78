// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/resistor-calculator/internal/domain"
	"github.com/jsamuelsen11/resistor-calculator/internal/domain/resistor"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/telemetry"
	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// User-facing texts.
const (
	PromptText = "This program calculates resistor values based on the resistor entered.\n" +
		"Ex. RED-BLUE-BROWN\n" +
		"Enter a resistor."
	PromptPlaceholder = "RED-BLUE-BROWN"
	UnsupportedText   = "The resistor entered is not supported!"
	resultFormat      = "The value of the resistor \"%s\" is: %d ohms."
)

// Compile-time check that DecoderService implements ports.DecoderService.
var _ ports.DecoderService = (*DecoderService)(nil)

// DecoderService implements ports.DecoderService. Decoding itself lives in
// domain/resistor; the service adds logging, telemetry and the dialog round
// trip through the UserInteraction port.
type DecoderService struct {
	ui      ports.UserInteraction
	title   string
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewDecoderService creates a DecoderService. The title labels every dialog.
// A nil metrics disables recording; a nil logger discards logs.
func NewDecoderService(ui ports.UserInteraction, title string, metrics *telemetry.Metrics, logger *slog.Logger) *DecoderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DecoderService{
		ui:      ui,
		title:   title,
		metrics: metrics,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
		logger:  logger,
	}
}

// Decode parses raw and computes the resistance it encodes.
func (s *DecoderService) Decode(ctx context.Context, raw string) (*ports.Result, error) {
	ctx, span := s.tracer.Start(ctx, "DecoderService.Decode",
		trace.WithAttributes(telemetry.AttrInput.String(raw)))
	defer span.End()

	start := time.Now()
	code, err := resistor.Parse(raw)
	s.metrics.RecordDecode(ctx, resultOf(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WarnContext(ctx, "rejected resistor code",
			slog.String("operation", "Decode"),
			slog.String("input", raw),
			slog.Any("error", err),
		)
		return nil, err
	}

	ohms := code.Ohms()
	span.SetAttributes(telemetry.AttrOhms.Int64(ohms))
	s.logger.InfoContext(ctx, "decoded resistor code",
		slog.String("input", raw),
		slog.String("code", code.String()),
		slog.Int64("ohms", ohms),
	)

	return &ports.Result{Input: raw, Code: code, Ohms: ohms}, nil
}

// Run prompts once, decodes the answer and shows the result. Cancelling the
// prompt ends the run without a result dialog; every submitted answer, empty
// included, gets one.
func (s *DecoderService) Run(ctx context.Context) error {
	raw, err := s.ui.PromptText(ctx, ports.Prompt{
		Title:       s.title,
		Text:        PromptText,
		Placeholder: PromptPlaceholder,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoInput) {
			s.metrics.RecordDecode(ctx, telemetry.ResultNoInput, 0)
			s.logger.InfoContext(ctx, "prompt dismissed")
			return nil
		}
		return fmt.Errorf("prompting for resistor code: %w", err)
	}

	result, err := s.Decode(ctx, raw)
	switch {
	case err != nil:
		s.notify(ctx, ports.Message{Title: s.title, Text: UnsupportedText, Severity: ports.SeverityError})
	default:
		s.notify(ctx, ports.Message{
			Title:    s.title,
			Text:     ResultText(result),
			Severity: ports.SeverityInfo,
		})
	}
	return nil
}

// ResultText formats the success message for a decoded code.
func ResultText(r *ports.Result) string {
	return fmt.Sprintf(resultFormat, r.Input, r.Ohms)
}

func (s *DecoderService) notify(ctx context.Context, msg ports.Message) {
	if err := s.ui.Notify(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to show message",
			slog.String("operation", "Run"),
			slog.String("severity", msg.Severity.String()),
			slog.Any("error", err),
		)
	}
}

// resultOf maps a parse outcome to its telemetry result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultOK
	case errors.Is(err, domain.ErrUnknownColor):
		return telemetry.ResultUnknownColor
	default:
		return telemetry.ResultUnsupportedFormat
	}
}
