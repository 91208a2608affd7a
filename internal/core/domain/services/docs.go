// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the labeling system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - VolumeDecomposer: Breaks an invoice into identified, weighted volumes
//   - ClassificationResolver: Derives label display fields via fallback chains
//   - MasterLabelLinker: Consolidates volumes under master labels
//   - HazardCatalog: Resolves UN numbers to dangerous-goods classifications
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
