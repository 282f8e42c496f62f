// Package rules provides the builtin validators for validkit: required,
// email, url, match, length, number, compare, in, boolean, filter and unique.
//
// Each validator is a plain struct implementing validkit.Checker; configure
// it with its exported fields and bind it directly:
//
//	validkit.Rule{Attributes: []string{"age"}, Checker: rules.Number{IntegerOnly: true, Min: rules.Float(18)}}
//
// or refer to it by alias with parameters:
//
//	validkit.Rule{Attributes: []string{"age"}, Type: "integer", Params: map[string]any{"min": 18}}
//
// Importing the package registers the aliases into validkit.DefaultRegistry:
//
//	import _ "github.com/dmitrymomot/validkit/rules"
//
// Validators that can express their check client-side implement
// validkit.ClientCoder and contribute fragments to Engine.ClientForm; filter
// and unique are server-only and degrade to remote validation.
//
// Failure messages are templates. Validators fill their own parameters
// ({min}, {target}, …) and leave {attribute} for the engine to expand with
// the attribute label.
package rules
