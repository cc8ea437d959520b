// Package builder generates deterministic core.SearchSpace fixtures for
// demos, tests, benchmarks and the `astar generate` command.
//
// Every constructor places its nodes on the plane, so the same fixture can be
// searched with either heuristic:
//
//   - Path(n):             a horizontal line, spacing apart.
//   - Cycle(n):            a ring.
//   - Star(n):             "Center" at the origin, n-1 leaves on a ring.
//   - Complete(n):         a ring with every ordered pair linked.
//   - Grid(rows, cols):    a lattice with "r,c" labels and symmetric links.
//   - RandomSparse(n, p):  seeded random positions and links.
//
// Options:
//
//   - WithIDScheme / WithLetterIDs / WithPrefixIDs: node labels.
//   - WithSeed / WithRand: randomness source.
//   - WithSpacing:          plane distance between neighbors (default 10).
//   - WithBidirectional:    emit v->u after each u->v.
//   - WithDisabledLinks(p): switch off a seeded random share of links.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical spaces.
//   - Constructors validate before mutating and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed); option constructors panic on meaningless input.
//
// Example:
//
//	space, err := builder.BuildSpace(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithDisabledLinks(0.1)},
//	    builder.Grid(10, 10),
//	)
package builder
