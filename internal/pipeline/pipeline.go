// Package pipeline runs one full dashboard render: dataset, attachment check,
// chart and layout, in that order.
package pipeline

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cjanusz/cv-dashboard/internal/attachment"
	"github.com/cjanusz/cv-dashboard/internal/chart"
	"github.com/cjanusz/cv-dashboard/internal/layout"
	"github.com/cjanusz/cv-dashboard/internal/metrics"
	"github.com/cjanusz/cv-dashboard/internal/profile"
)

const tracerName = "github.com/cjanusz/cv-dashboard/internal/pipeline"

// Result is everything a single render produced.
type Result struct {
	Dataset    *profile.Dataset
	Chart      chart.Spec
	Attachment attachment.Outcome
	Blocks     []layout.Block
}

// Pipeline renders the dashboard. It holds no per-render state.
type Pipeline struct {
	ref     attachment.Ref
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) {
		p.tracer = t
	}
}

// WithMetrics records renders and attachment checks.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// New creates a pipeline for the given attachment.
func New(ref attachment.Ref, opts ...Option) *Pipeline {
	p := &Pipeline{ref: ref}
	for _, opt := range opts {
		opt(p)
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer(tracerName)
	}
	return p
}

// Attachment is the reference checked on every render.
func (p *Pipeline) Attachment() attachment.Ref {
	return p.ref
}

// Render builds a fresh dataset and checks the attachment exactly once.
func (p *Pipeline) Render(ctx context.Context) Result {
	ctx, span := p.tracer.Start(ctx, "pipeline.Render")
	defer span.End()

	ds := profile.New()
	att := attachment.Resolve(p.ref)
	if !att.Available {
		slog.DebugContext(ctx, "attachment not available", "path", p.ref.Path, "reason", att.Err)
	}

	spec := chart.ComputeSkillChart(ds.Skills())
	blocks := layout.Render(ds, spec, att)

	span.SetAttributes(
		attribute.Bool("attachment.available", att.Available),
		attribute.Int("layout.blocks", len(blocks)),
		attribute.Int("chart.axes", len(spec.Axes)),
	)
	if p.metrics != nil {
		p.metrics.Renders.Inc()
		p.metrics.ObserveAttachment(att.Available)
	}

	return Result{
		Dataset:    ds,
		Chart:      spec,
		Attachment: att,
		Blocks:     blocks,
	}
}
