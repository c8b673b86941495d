// Package builder assembles deterministic core.Graph fixtures: paths, cycles,
// complete graphs, grids and random sparse networks.
//
// A graph is built by BuildGraph from functional options (ID scheme, RNG seed,
// weight generator) and an ordered list of Constructors. Constructors add their
// vertices before their edges, as core.Graph requires, and never panic; invalid
// parameters surface as sentinel errors wrapped with the constructor name.
//
// Same options, same seed and same constructor order ⇒ identical graph.
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
//	    builder.RandomSparse(50, 0.1),
//	)
package builder
