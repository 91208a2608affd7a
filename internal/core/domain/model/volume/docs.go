// Package volume provides domain entities and business logic for the label
// lifecycle of physical parcels. It implements the Volume aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Volume: The aggregate root that manages a parcel's identity, shipment
//     metadata, weight share, and print lifecycle
//   - Status: A state machine that enforces valid label status transitions
//   - Shipment: The shared shipment metadata copied from the source invoice
//
// Key business rules:
//   - Volumes must have a valid code, a source invoice number, and a 1-based
//     sequence within the invoice's declared volume count
//   - Label status follows a defined workflow: Generated -> Labeled, with
//     terminal exits to Invalidated (with justification) or Consolidated
//   - Printed labels can be reprinted but never deleted
//   - Unlinking from a master label returns the volume to Generated and drops
//     its print history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package volume
