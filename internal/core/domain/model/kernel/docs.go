// Package kernel provides core domain primitives for the labeling system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - VolumeCode: A value object for the stable, human-readable identity of one
//     physical volume, derived from invoice number, sequence, and generation hour
//   - Weight: A non-negative kilogram amount with exact two-decimal arithmetic
//     and locale-tolerant parsing
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
