// Package solid contains small, contrastive examples of the five SOLID
// principles in Go, plus the one reusable piece they all lean on: a keyed
// capability registry.
//
// Layout:
//
//   - registry: a caller-constructed, mutex-serialized service registry with
//     untyped (Get) and typed (As / TryAs / MustAs) retrieval. This is the
//     only package with a contract worth depending on.
//   - examples/srp, ocp, lsp, isp, dip: one package per principle. Each shows
//     a "bad" (violating) and a "good" (conforming) implementation over a toy
//     domain and prints the contrast to an io.Writer.
//   - examples: shared capability stand-ins (database, email, payment) used
//     by the demos. They record strings and return fake tokens; none of them
//     performs real I/O.
//   - cmd/solid: runs the demos, selected by name through the registry.
//
// The wiring philosophy follows the registry's own docs: static call sites
// take their dependencies as constructor parameters; the keyed registry is
// reserved for genuinely dynamic lookups (here, picking a demo by name at
// runtime).
//
// Import
//
//	"github.com/sghaida/solid/registry"
package solid
