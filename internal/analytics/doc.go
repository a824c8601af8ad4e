// Package analytics turns workout and RM records into training-load metrics.
//
// Everything here is a pure function over an in-memory snapshot: no I/O, no
// shared state, no clocks. Callers fetch the records, call in, and persist any
// derived value themselves. Missing data is reported through ok flags, never
// through errors.
package analytics
