package scene

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Outcome is the reported result of one query.
type Outcome struct {
	Op            string      `yaml:"op"`
	A             string      `yaml:"a"`
	B             string      `yaml:"b"`
	Intersect     bool        `yaml:"intersect"`
	Distance      *float64    `yaml:"distance,omitempty"`
	ClosestPoints [][]float64 `yaml:"closestPoints,omitempty,flow"`
	Points        [][]float64 `yaml:"points,omitempty,flow"`
	Detail        string      `yaml:"detail,omitempty"`
}

// Report holds the outcomes of a scene's queries, in order.
type Report struct {
	Scene    string    `yaml:"scene,omitempty"`
	Outcomes []Outcome `yaml:"outcomes"`
}

// Runner evaluates the queries of scenes.
type Runner struct {
	Registry *Registry
	Logger   *zap.Logger
	// Precision is the number of significant digits numbers are rounded to in
	// reports. 0 disables rounding.
	Precision int
}

// NewRunner returns a runner using the given registry. A nil logger discards
// all log output.
func NewRunner(reg *Registry, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Registry: reg, Logger: logger}
}

// Run builds the shapes of doc and evaluates its queries in order. It stops at
// the first query that can't be evaluated, and checks ctx before every query.
func (r *Runner) Run(ctx context.Context, doc *Document) (Report, error) {
	shapes := make(map[string]Shape, len(doc.Shapes))
	for name, spec := range doc.Shapes {
		s, err := Build(spec)
		if err != nil {
			return Report{}, fmt.Errorf("shape %q: %w", name, err)
		}
		shapes[name] = s
	}
	r.Logger.Debug("built shapes", zap.Int("count", len(shapes)))

	report := Report{Outcomes: make([]Outcome, 0, len(doc.Queries))}
	for i, qs := range doc.Queries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		out, err := r.run(qs, shapes)
		if err != nil {
			return report, fmt.Errorf("query %d: %w", i, err)
		}
		report.Outcomes = append(report.Outcomes, out)
	}
	return report, nil
}

func (r *Runner) run(qs QuerySpec, shapes map[string]Shape) (Outcome, error) {
	op, err := parseOp(qs.Op)
	if err != nil {
		return Outcome{}, err
	}
	a, ok := shapes[qs.A]
	if !ok {
		return Outcome{}, fmt.Errorf("%w %q", ErrUnknownShape, qs.A)
	}
	b, ok := shapes[qs.B]
	if !ok {
		return Outcome{}, fmt.Errorf("%w %q", ErrUnknownShape, qs.B)
	}
	q, err := r.Registry.Lookup(op, a.Kind, b.Kind)
	if err != nil {
		r.Logger.Warn("unsupported query",
			zap.String("op", string(op)),
			zap.String("a", string(a.Kind)),
			zap.String("b", string(b.Kind)))
		return Outcome{}, err
	}

	res := q.Find(a, b)
	out := Outcome{
		Op:            string(op),
		A:             qs.A,
		B:             qs.B,
		Intersect:     res.Intersect,
		Distance:      res.Distance,
		ClosestPoints: res.ClosestPoints,
		Points:        res.Points,
		Detail:        res.Detail,
	}
	r.round(&out)

	fields := []zap.Field{
		zap.String("op", out.Op),
		zap.String("a", out.A),
		zap.String("b", out.B),
		zap.Bool("intersect", out.Intersect),
	}
	if out.Distance != nil {
		fields = append(fields, zap.Float64("distance", *out.Distance))
	}
	r.Logger.Debug("query", fields...)
	return out, nil
}

func (r *Runner) round(out *Outcome) {
	if r.Precision <= 0 {
		return
	}
	round := func(x float64) float64 {
		y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', r.Precision, 64), 64)
		if err != nil {
			return x
		}
		return y
	}
	if out.Distance != nil {
		d := round(*out.Distance)
		out.Distance = &d
	}
	for _, pts := range [][][]float64{out.ClosestPoints, out.Points} {
		for _, p := range pts {
			for i := range p {
				p[i] = round(p[i])
			}
		}
	}
}
