// Package client is the execution contract for validkit's client-side
// validation fragments.
//
// Engine.ClientForm emits data-oriented fragment descriptors; this package
// defines what a conforming client runtime must do with them. Each fragment
// executes against four bound names: the attribute identifier, the value
// under test, an append-only message sink, and a deferred-completion gate for
// checks that finish asynchronously. One submission is valid only when every
// synchronous fragment left its sink empty and every registered deferred
// completion resolved with no messages.
//
// Executor is a reference runtime in Go: callers register a handler per
// operation kind and run a form against a value map. It doubles as the test
// bed for the gate semantics — including cancellation, which must ignore the
// eventual result of unresolved completions:
//
//	ex := client.NewExecutor()
//	ex.Handle("required", func(v any, _ map[string]any, sink *client.Sink, _ *client.Completion) {
//		if v == nil || v == "" {
//			sink.Add("required")
//		}
//	})
//	result, err := ex.Run(ctx, form, values)
//
// The engine itself never renders executable code; a production front end
// would translate the same fragments into its own language.
package client
