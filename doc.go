// Package localizer resolves symbolic lookup keys into locale- and
// style-specific strings through an ordered chain of pluggable loaders,
// interpolating ${...} placeholders from a caller-supplied data object.
//
// # Quick Start
//
//	loc := localizer.New(
//	    localizer.WithLoaders(loader.NewMemoryLoader(cat)),
//	    localizer.WithPolicy(localizer.Policy{ThrowOnMissing: true}),
//	)
//
//	greeting, err := loc.Resolve(ctx, localizer.Request{
//	    Key:    "greeting",
//	    Locale: "fr-FR",
//	    Data:   map[string]any{"name": "Ann"},
//	})
//
// The first loader to produce a value wins; later loaders are never
// consulted. When no loader has the key, the policy picks between the
// request's default value, a ResourceNotFoundError, and a visible warning
// placeholder, in that order.
//
// # Interpolation engines
//
// Placeholder expressions are evaluated by a pluggable Interpolator. The
// default engine uses expr-lang/expr; cel-go and (behind the js_eval build
// tag) goja engines ship alongside it. Compiled placeholder programs can be
// cached via WithProgramCache and extended with custom functions via
// WithFunctionRegistry.
//
// # Loaders
//
// The loader subpackage provides catalog-backed memory loaders, go-i18n
// bundle loaders, TOML/JSON catalog file loaders, and a PostgreSQL loader.
// Any type satisfying the Loader interface can join the chain.
package localizer
