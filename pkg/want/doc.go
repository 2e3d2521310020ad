// Package want flattens nested unwrap chains over two-state wrapper values.
//
// Any type answering "is this the outcome I want?" can take part by
// implementing the small Wanted/Provider capability pair; the package ships
// the two usual wrappers (Result[T] for ok/err, Option[T] for
// present/absent) and helpers that classify a value once and either hand
// over its payload or fall back.
//
// Highlights:
// - Success/Fail/Try: construct Result[T], including from (T, error) returns
// - Some/None/Maybe: construct Option[T], including from comma-ok returns
// - Or/OrElse/OrZero: unwrap with an eager, lazy or zero fallback
// - Get: the classify-and-extract pair behind caller-written continue/return
// - Values: filter an iterator down to its wanted payloads
//
// Divergent early exits (return, return false/true, return value, guards)
// live in the want/exit subpackage.
package want
