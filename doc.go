// Package matchain finds the cheapest order in which to multiply a chain
// of matrices.
//
// 🚀 What is matchain?
//
//	A small, dependency-light toolkit around the classic matrix chain
//	ordering problem:
//		• Chains: parse "6x7 7x5 5x4", validate conformability & shapes
//		• Baseline: the naive pairwise cost of the chain
//		• Oracle: exhaustive search over every parenthesization
//		• Solver: memoized (top-down) or tabular (bottom-up) DP
//		• Rendering: "(C1 x (C2 x C3))" and the all-splits display
//		• Execution: run a plan on real matrices, count the work
//		• Tooling: CLI, HTTP API, Graphviz split trees
//
// ✨ Why choose matchain?
//
//   - Deterministic – identical tables from both DP strategies, first-k tie-break
//   - Checked – every reference chain is cross-checked by oracle and execution
//   - Pure library core – chain/ and mcm/ never log and never panic on input
//
// Packages:
//
//	chain/      Chain descriptor, Parse, Validate & sentinel errors
//	mcm/        NaiveCost, ExhaustiveCost, Solve, Evaluate & renderers
//	dense/      integer matrices, Mul, Execute along a split table
//	splitviz/   split tree as DOT, rendered to SVG with Graphviz
//	internal/   config (TOML), battery runner, HTTP server, CLI
//
// Quick example, three matrices:
//
//	6×7 · 7×5 · 5×4
//	naive   (C1 x (C2 x C3)(C1 x C2) x C3)   350
//	optimal (C1 x (C2 x C3))                 308
//
//	go run ./cmd/matchain solve 6x7 7x5 5x4
package matchain
