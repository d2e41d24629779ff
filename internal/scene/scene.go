// Package scene loads named shapes and the queries to run on them from YAML
// documents, and evaluates the queries with the geom package.
//
// A scene looks like this:
//
//	shapes:
//	  box0: {kind: alignedbox3, min: [-1, -1, -1], max: [1, 1, 1]}
//	  box1: {kind: orientedbox3, center: [2.5, 3, 3.5], extent: [0.5, 1, 1.5]}
//	queries:
//	  - {op: distance, a: box0, b: box1}
//	  - {op: test, a: box0, b: box1}
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/geom"
)

var (
	ErrUnknownKind     = errors.New("unknown shape kind")
	ErrBadShape        = errors.New("malformed shape")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownQuery    = errors.New("unknown query operation")
	ErrUnsupportedPair = errors.New("unsupported shape pair")
)

// Kind names a shape type.
type Kind string

const (
	Point2       Kind = "point2"
	Triangle2    Kind = "triangle2"
	Point3       Kind = "point3"
	Line3        Kind = "line3"
	Ray3         Kind = "ray3"
	Segment3     Kind = "segment3"
	Triangle3    Kind = "triangle3"
	Rectangle3   Kind = "rectangle3"
	AlignedBox3  Kind = "alignedbox3"
	OrientedBox3 Kind = "orientedbox3"
	Sphere3      Kind = "sphere3"
	Capsule3     Kind = "capsule3"
	Cylinder3    Kind = "cylinder3"
	Cone3        Kind = "cone3"
	Ellipsoid3   Kind = "ellipsoid3"
	Plane3       Kind = "plane3"
	Halfspace3   Kind = "halfspace3"
)

// Op is a query operation.
type Op string

const (
	// Distance computes the distance and closest points.
	Distance Op = "distance"
	// Test decides whether the shapes intersect.
	Test Op = "test"
	// Find computes the intersection set.
	Find Op = "find"
)

func parseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case Distance, Test, Find:
		return op, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownQuery, s)
	}
}

// Document is the YAML form of a scene.
type Document struct {
	Shapes  map[string]ShapeSpec `yaml:"shapes"`
	Queries []QuerySpec          `yaml:"queries"`
}

// ShapeSpec describes one shape. Which fields are used depends on Kind.
type ShapeSpec struct {
	Kind string `yaml:"kind"`

	Point     []float64   `yaml:"point,omitempty"`
	Center    []float64   `yaml:"center,omitempty"`
	Origin    []float64   `yaml:"origin,omitempty"`
	Direction []float64   `yaml:"direction,omitempty"`
	P0        []float64   `yaml:"p0,omitempty"`
	P1        []float64   `yaml:"p1,omitempty"`
	Min       []float64   `yaml:"min,omitempty"`
	Max       []float64   `yaml:"max,omitempty"`
	Extent    []float64   `yaml:"extent,omitempty"`
	Normal    []float64   `yaml:"normal,omitempty"`
	Vertices  [][]float64 `yaml:"vertices,omitempty"`
	Axes      [][]float64 `yaml:"axes,omitempty"`
	Rotation  *Rotation   `yaml:"rotation,omitempty"`

	Radius    *float64 `yaml:"radius,omitempty"`
	Angle     *float64 `yaml:"angle,omitempty"`
	MinHeight *float64 `yaml:"minHeight,omitempty"`
	MaxHeight *float64 `yaml:"maxHeight,omitempty"`
	Height    *float64 `yaml:"height,omitempty"`
	Constant  *float64 `yaml:"constant,omitempty"`
}

// Rotation is a rotation by Angle radians about Axis.
type Rotation struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"`
}

// QuerySpec names an operation and the two shapes it applies to.
type QuerySpec struct {
	Op string `yaml:"op"`
	A  string `yaml:"a"`
	B  string `yaml:"b"`
}

// Load decodes a scene. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return &doc, nil
}

// LoadFile decodes the scene stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Shape is a shape of any kind. Value holds the geom value of the type that
// corresponds to Kind, such as geom.Sphere3[float64] for Sphere3.
type Shape struct {
	Kind  Kind
	Value any
}

// Build converts the specification into a shape.
func Build(spec ShapeSpec) (Shape, error) {
	b := builder{spec: spec}
	var v any
	switch k := Kind(spec.Kind); k {
	case Point2:
		v = b.vec2("point", spec.Point)
	case Triangle2:
		v = b.triangle2()
	case Point3:
		v = b.vec3("point", spec.Point)
	case Line3:
		v = geom.Line3[float64]{Origin: b.vec3("origin", spec.Origin), Direction: b.vec3("direction", spec.Direction)}
	case Ray3:
		v = geom.Ray3[float64]{Origin: b.vec3("origin", spec.Origin), Direction: b.vec3("direction", spec.Direction)}
	case Segment3:
		v = geom.Segment3[float64]{P0: b.vec3("p0", spec.P0), P1: b.vec3("p1", spec.P1)}
	case Triangle3:
		v = b.triangle3()
	case Rectangle3:
		axes := b.axes(2)
		v = geom.Rectangle3[float64]{
			Center: b.vec3("center", spec.Center),
			Axis:   [2]geom.Vec3[float64]{axes[0], axes[1]},
			Extent: b.vec2("extent", spec.Extent),
		}
	case AlignedBox3:
		v = geom.AlignedBox3[float64]{Min: b.vec3("min", spec.Min), Max: b.vec3("max", spec.Max)}
	case OrientedBox3:
		v = geom.OrientedBox3[float64]{
			Center: b.vec3("center", spec.Center),
			Axis:   b.axes(3),
			Extent: b.vec3("extent", spec.Extent),
		}
	case Ellipsoid3:
		v = geom.Ellipsoid3[float64]{
			Center: b.vec3("center", spec.Center),
			Axis:   b.axes(3),
			Extent: b.vec3("extent", spec.Extent),
		}
	case Sphere3:
		v = geom.Sphere3[float64]{Center: b.vec3("center", spec.Center), Radius: b.scalar("radius", spec.Radius)}
	case Capsule3:
		v = geom.Capsule3[float64]{
			Segment: geom.Segment3[float64]{P0: b.vec3("p0", spec.P0), P1: b.vec3("p1", spec.P1)},
			Radius:  b.scalar("radius", spec.Radius),
		}
	case Cylinder3:
		v = geom.Cylinder3[float64]{
			Axis:   geom.Line3[float64]{Origin: b.vec3("origin", spec.Origin), Direction: b.unit("direction", spec.Direction)},
			Radius: b.scalar("radius", spec.Radius),
			Height: b.optional(spec.Height, math.Inf(1)),
		}
	case Cone3:
		v = b.cone()
	case Plane3:
		v = geom.Plane3[float64]{Normal: b.unit("normal", spec.Normal), Constant: b.constant()}
	case Halfspace3:
		v = geom.Halfspace3[float64]{Normal: b.unit("normal", spec.Normal), Constant: b.constant()}
	default:
		return Shape{}, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}
	if b.err != nil {
		return Shape{}, b.err
	}
	return Shape{Kind: Kind(spec.Kind), Value: v}, nil
}

// builder converts the fields of a ShapeSpec, remembering the first error.
type builder struct {
	spec ShapeSpec
	err  error
}

func (b *builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s: %s", ErrBadShape, b.spec.Kind, fmt.Sprintf(format, args...))
	}
}

func (b *builder) vec2(field string, v []float64) geom.Vec2[float64] {
	if len(v) != 2 {
		b.fail("%s needs 2 components, got %d", field, len(v))
		return geom.Vec2[float64]{}
	}
	return geom.Vec2[float64]{X: v[0], Y: v[1]}
}

func (b *builder) vec3(field string, v []float64) geom.Vec3[float64] {
	if len(v) != 3 {
		b.fail("%s needs 3 components, got %d", field, len(v))
		return geom.Vec3[float64]{}
	}
	return geom.Vec3[float64]{X: v[0], Y: v[1], Z: v[2]}
}

func (b *builder) unit(field string, v []float64) geom.Vec3[float64] {
	u, ok := geom.Normalize(b.vec3(field, v))
	if !ok {
		b.fail("%s must not be zero", field)
	}
	return u
}

func (b *builder) scalar(field string, v *float64) float64 {
	if v == nil {
		b.fail("missing %s", field)
		return 0
	}
	if *v < 0 {
		b.fail("%s must not be negative", field)
	}
	return *v
}

func (b *builder) optional(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// axes returns n orthonormal axes, from either the axes or the rotation field.
// Without either, the axes are the standard basis.
func (b *builder) axes(n int) [3]geom.Vec3[float64] {
	std := [3]geom.Vec3[float64]{geom.UnitX[float64](), geom.UnitY[float64](), geom.UnitZ[float64]()}
	switch {
	case b.spec.Axes != nil && b.spec.Rotation != nil:
		b.fail("axes and rotation are mutually exclusive")
		return std
	case b.spec.Axes != nil:
		if len(b.spec.Axes) != n {
			b.fail("axes needs %d vectors, got %d", n, len(b.spec.Axes))
			return std
		}
		axes := std
		for i, a := range b.spec.Axes {
			axes[i] = b.vec3("axes", a)
		}
		if n == 2 {
			axes[2] = axes[0].Cross(axes[1])
		}
		o, ok := geom.Orthonormalize(axes)
		if !ok {
			b.fail("axes are linearly dependent")
			return std
		}
		return o
	case b.spec.Rotation != nil:
		axis := b.unit("rotation axis", b.spec.Rotation.Axis)
		return geom.QuatAxisAngle(axis, b.spec.Rotation.Angle).Axes()
	default:
		return std
	}
}

func (b *builder) triangle2() geom.Triangle2[float64] {
	var t geom.Triangle2[float64]
	if len(b.spec.Vertices) != 3 {
		b.fail("vertices needs 3 points, got %d", len(b.spec.Vertices))
		return t
	}
	for i, v := range b.spec.Vertices {
		t.V[i] = b.vec2("vertices", v)
	}
	return t
}

func (b *builder) triangle3() geom.Triangle3[float64] {
	var t geom.Triangle3[float64]
	if len(b.spec.Vertices) != 3 {
		b.fail("vertices needs 3 points, got %d", len(b.spec.Vertices))
		return t
	}
	for i, v := range b.spec.Vertices {
		t.V[i] = b.vec3("vertices", v)
	}
	return t
}

func (b *builder) constant() float64 {
	switch {
	case b.spec.Constant != nil && b.spec.Point != nil:
		b.fail("constant and point are mutually exclusive")
	case b.spec.Constant != nil:
		return *b.spec.Constant
	case b.spec.Point != nil:
		n, _ := geom.Normalize(b.vec3("normal", b.spec.Normal))
		return n.Dot(b.vec3("point", b.spec.Point))
	}
	return 0
}

func (b *builder) cone() geom.Cone3[float64] {
	ray := geom.Ray3[float64]{Origin: b.vec3("origin", b.spec.Origin), Direction: b.unit("direction", b.spec.Direction)}
	angle := b.scalar("angle", b.spec.Angle)
	hmin := b.optional(b.spec.MinHeight, 0)
	hmax := b.optional(b.spec.MaxHeight, math.Inf(1))
	if b.err != nil {
		return geom.Cone3[float64]{}
	}
	if !(angle > 0 && angle < math.Pi/2) {
		b.fail("angle must be in (0, π/2), got %g", angle)
		return geom.Cone3[float64]{}
	}
	if hmin < 0 || hmax <= hmin {
		b.fail("heights must satisfy 0 ≤ minHeight < maxHeight, got [%g, %g]", hmin, hmax)
		return geom.Cone3[float64]{}
	}
	return geom.NewConeFrustum(ray, angle, hmin, hmax)
}
