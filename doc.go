// Package geom computes distances and intersections between geometric
// primitives in two and three dimensions. All types and queries are generic
// over float32 and float64.
//
// # Primitives
//
// Points are vectors, [Vec2] and [Vec3]. Code that works in any dimension is
// written against the [Vector] constraint, and the dimension-generic shapes
// ([Line], [Ray], [Segment], [Triangle], [AlignedBox], [Hypersphere]) are
// parametrized by their vector type. The aliases [Segment3], [AlignedBox2],
// [Sphere3] and so on name the common instantiations.
//
// The remaining shapes are specific to a dimension: [OrientedBox2],
// [OrientedBox3], [Rectangle3], [Plane3], [Halfspace3], [Capsule3],
// [Cylinder3], [Cone3], [Ellipse2], [Ellipsoid3] and [ConvexPolygon2].
// Orientations are stored as orthonormal axes; [Quaternion] and [Matrix3]
// construct them, and [Affine] transforms 2D shapes.
//
// # Queries
//
// Queries are plain functions named after the pair of shapes they relate.
// There are three kinds:
//
//   - Distance queries, DistXY, return a [DistanceResult]: the distance,
//     its square, a closest point on each shape and, for linear components,
//     the parameters of those points.
//   - Test queries, TestXY, return a [TestResult] reporting whether the
//     shapes intersect. Tests between moving shapes return a [SweptResult]
//     with the first time of contact.
//   - Find queries, FindXY, return the intersection set, such as a
//     [LinearIntersection] for a line crossing a solid or a
//     [PolygonIntersection] for two convex polygons.
//
// Shapes are solid: a point inside a box is at distance zero from it, and a
// segment that lies inside a sphere intersects it. The exceptions are the
// ellipse and ellipsoid distance queries, which measure the distance to the
// boundary.
//
// Results always list the shapes in argument order. Queries for the reverse
// pair can be built with [Swapped] and [DistanceResult.Swap]. The [TestQuery]
// and [FindQuery] interfaces, with their function adapters [TestFunc] and
// [FindFunc], allow collecting queries in tables.
//
// Pairs of convex shapes in 3D that have no dedicated distance query are
// handled by [DistConvex3], an implementation of the
// Gilbert–Johnson–Keerthi algorithm over the shapes' support mappings.
//
// # Tolerances
//
// Queries that have to decide whether a configuration is degenerate, such as
// whether two lines are parallel, take a [Tolerance]. Its tests are relative to
// the magnitude of the inputs, so that scaling a scene doesn't change the
// outcome of its queries. [DefaultTolerance] returns sensible values for both
// precisions. Iterative solvers are bounded by Tolerance.MaxIterations and
// return their best estimate when they run out.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Geometric Tools for Computer Graphics] by Schneider and Eberly
//   - [Real-Time Collision Detection] by Christer Ericson
//   - [A Fast and Robust GJK Implementation for Collision Detection of Convex Objects] by Gino van den Bergen
//   - [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid] by David Eberly
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Sutherland–Hodgman algorithm]
//
// [Geometric Tools for Computer Graphics]: https://www.geometrictools.com/Books/Books.html
// [Real-Time Collision Detection]: https://realtimecollisiondetection.net/
// [A Fast and Robust GJK Implementation for Collision Detection of Convex Objects]: https://doi.org/10.1080/10867651.1999.10487502
// [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid]: https://www.geometrictools.com/Documentation/DistancePointEllipseEllipsoid.pdf
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Sutherland–Hodgman algorithm]: https://en.wikipedia.org/wiki/Sutherland%E2%80%93Hodgman_algorithm
package geom
