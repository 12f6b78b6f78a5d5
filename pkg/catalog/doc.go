// Package catalog defines flat string-resource catalogs keyed by lookup key
// per locale/style variant, plus persistence-facing contracts for loading and
// saving catalog snapshots.
//
// Responsibilities:
//   - Catalog holds key→value entries for each Variant and knows nothing
//     about resolution order or policy.
//   - Merge composes layered catalogs (application overrides on top of
//     system defaults) before a loader is registered.
//   - Store only loads/saves a single catalog snapshot for a single Ref;
//     implementations own concurrency and persistence concerns.
//
// Data flow:
//
//	Store -> loader.NewStoreLoader(...) -> localizer loader chain
package catalog
