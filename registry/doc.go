// Package registry provides a small keyed service registry (service locator).
//
// It maps string keys to opaque capability instances so that consumers depend
// on "whatever is registered under this name" rather than on a concrete type.
// The registry is deliberately minimal:
//
//   - Register is last-write-wins and never fails. RegisterOnce is the
//     opt-in strict variant that refuses to overwrite.
//   - Get returns the registered instance or NotFoundError; there is no
//     silent default and no removal operation.
//   - Retrieval is untyped by design; the generic helpers As, TryAs and
//     MustAs add a runtime type check on top for callers that want one.
//
// A Registry is an explicit value with a caller-defined lifetime, not a
// process-wide global, and every operation is safe for concurrent use.
//
// A keyed registry is easy to overuse. Prefer passing capability
// implementations directly as constructor parameters when the call site is
// static; reach for the registry only when the selection is genuinely
// dynamic (plugin-style lookup by name).
//
// Expected usage:
//
//	reg := registry.New().
//		Register("db", db).
//		Register("mailer", mailer)
//
//	db, err := registry.TryAs[Database](reg, "db")
package registry
