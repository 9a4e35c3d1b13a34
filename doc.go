// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envarify turns environment variables into strongly typed,
// validated, immutable configuration objects declared through an explicit
// schema, eliminating the parse-and-validate boilerplate at process
// startup.
//
// A schema is an ordered list of field declarations, each binding a field
// name to a declared type, a source environment variable, and an optional
// default:
//
//	var schema = envarify.MustSchema("AppConfig",
//		envarify.Field{Name: "timeout_s", Key: "TIMEOUT_S", Type: envarify.Float()},
//		envarify.Field{Name: "api_key", Key: "API_KEY", Type: envarify.SecretString()},
//		envarify.Field{Name: "allowed_ids", Key: "ALLOWED_IDS", Type: envarify.SetOf(envarify.Int())},
//		envarify.Field{Name: "enable_feature", Key: "ENABLE_FEATURE", Type: envarify.Bool(), Default: false},
//	)
//
//	cfg, err := schema.FromEnv()
//	if err != nil {
//		// one AggregateError listing every missing and invalid variable
//	}
//	timeout := cfg.Float("timeout_s")
//
// Builds are all-or-nothing: the walker resolves every field before
// deciding, so a single failed build reports all offending variables at
// once instead of stopping at the first. Match failure kinds with
// errors.Is against [ErrMissing] and [ErrInvalid].
//
// # Construction paths
//
// [Schema.FromEnv] snapshots the process environment once per call.
// [Schema.FromEnviron] takes an explicit snapshot, keeping builds
// deterministic and testable without touching process state.
// [Schema.FromValues] builds from already-typed values (for tests and
// wiring), enforcing the same required/default rules; [Schema.FromPartial]
// is the opt-in variant that leaves unsupplied no-default fields unset.
//
// # Supported types
//
// Scalars (int, float, bool, string), delimiter-separated lists, sets, and
// tuples of scalars, JSON-object dicts, case-sensitive string enums, dates
// and RFC 3339 datetimes, URLs with optional http/https scheme
// restrictions, and masked secrets. Schemas nest via [Nested]; embedded
// fields keep their own environment keys.
//
// Booleans accept, case-insensitively: true, yes, on, y, 1, false, no,
// off, n, 0. Every other token is invalid. Dates use the "2006-01-02"
// layout; datetimes use RFC 3339, with naive "2006-01-02T15:04:05" values
// accepted as well.
//
// # Secrets
//
// [SecretString] fields coerce into [Secret], which renders as "******" in
// every textual form, including the Config rendering, and exposes the
// payload only through its explicit Reveal method.
package envarify
