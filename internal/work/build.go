package work

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/scoredb/internal/ir"
	"github.com/roach88/scoredb/internal/metrical"
	"github.com/roach88/scoredb/internal/model"
	"github.com/roach88/scoredb/internal/performance"
)

// Namespace is the UUID namespace for work IDs derived from titles.
var Namespace = uuid.MustParse("8b0e6d52-3f4a-4c1e-9d27-5a61f0c3b7e4")

// Work is a built, queryable work.
type Work struct {
	ID    uuid.UUID
	Title string
	Model *model.Model
}

// Option configures Build and the loaders.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for load summaries. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build parses the document's attributes, times and meters and constructs
// the Model. Entities listed twice are rejected before the Model sees them.
func (d *Document) Build(opts ...Option) (*Work, error) {
	o := newOptions(opts)

	title := norm.NFC.String(strings.TrimSpace(d.Title))
	id, err := workID(d.ID, title)
	if err != nil {
		return nil, err
	}

	b := model.NewBuilder()

	if len(d.Meter) > 0 {
		meters := make([]metrical.Meter, 0, len(d.Meter))
		for i, text := range d.Meter {
			m, err := metrical.ParseMeter(text)
			if err != nil {
				return nil, invalidValue(fmt.Sprintf("meter.%d", i), err)
			}
			meters = append(meters, m)
		}
		b.SetMeter(metrical.NewStructure(meters...))
	}

	seen := make(map[ir.EntityID]int, len(d.Entities))
	for i, e := range d.Entities {
		eid := ir.EntityID(e.ID)
		if prev, ok := seen[eid]; ok {
			return nil, &LoadError{
				Code:    ErrCodeConstruction,
				Field:   fmt.Sprintf("entities.%d.id", i),
				Message: fmt.Sprintf("entity %d already listed at entities.%d", e.ID, prev),
			}
		}
		seen[eid] = i

		attr, ctx, err := e.parse(i)
		if err != nil {
			return nil, err
		}
		b.Add(eid, attr, ctx)
	}

	for _, ev := range d.Events {
		members := make([]ir.EntityID, len(ev.Members))
		for i, m := range ev.Members {
			members[i] = ir.EntityID(m)
		}
		b.AddEvent(ir.EntityID(ev.ID), members...)
	}

	m, err := b.Build(model.WithLogger(o.logger))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeConstruction, Message: "failed to build model", Err: err}
	}

	o.logger.Debug("work built",
		"id", id.String(),
		"title", title,
		"entities", m.Len(),
		"events", len(d.Events),
	)

	return &Work{ID: id, Title: title, Model: m}, nil
}

// parse converts one entity entry; i is its index for error fields.
func (e EntityDocument) parse(i int) (ir.Attribute, model.Context, error) {
	field := func(name string) string { return fmt.Sprintf("entities.%d.%s", i, name) }

	kind := ir.AttributeKind(e.Kind)
	text := e.Value
	if kind == ir.KindLyric {
		text = norm.NFC.String(text)
	}
	attr, err := ir.ParseAttribute(kind, text)
	if err != nil {
		return nil, model.Context{}, invalidValue(field("value"), err)
	}

	start, err := metrical.ParseDuration(string(e.Start))
	if err != nil {
		return nil, model.Context{}, invalidValue(field("start"), err)
	}
	end, err := metrical.ParseDuration(string(e.End))
	if err != nil {
		return nil, model.Context{}, invalidValue(field("end"), err)
	}
	iv, err := metrical.NewInterval(start, end)
	if err != nil {
		return nil, model.Context{}, invalidValue(field("end"), err)
	}

	return attr, model.Context{
		Interval: iv,
		Performance: performance.Context{
			Performer:  norm.NFC.String(e.Performer),
			Instrument: norm.NFC.String(e.Instrument),
			Voice:      e.Voice,
		},
	}, nil
}

func workID(given, title string) (uuid.UUID, error) {
	if given == "" {
		return uuid.NewSHA1(Namespace, []byte(title)), nil
	}
	id, err := uuid.Parse(given)
	if err != nil {
		return uuid.Nil, invalidValue("id", err)
	}
	return id, nil
}

func invalidValue(field string, err error) *LoadError {
	return &LoadError{Code: ErrCodeInvalidValue, Field: field, Message: "invalid value", Err: err}
}
