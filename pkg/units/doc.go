// Package units holds the unit registry: the table that maps unit symbols
// such as "m", "kWh" or "degC" to a dimension and to a scale factor against
// the SI base unit of that dimension.
//
// A Registry resolves a symbol by exact match first and then by stripping
// the longest known SI prefix ("km" is "k" + "m"). Entries are only ever
// added, never modified, so lookups are safe from any goroutine while a
// single writer extends the table. Freeze turns a registry read-only.
//
// Most callers use Default, a lazily built process-wide registry loaded
// with the built-in table. Tests and embedders that want isolation build
// their own with NewDefaultRegistry or NewRegistry.
package units
