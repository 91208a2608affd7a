// Package masterlabel provides the consolidation-unit aggregate of the
// labeling system. A master label groups volumes that travel together,
// typically on a pallet, under one printable identity.
//
// Key business rules:
//   - The kind (general or pallet) is immutable once the master label exists
//   - The volume count always equals the number of distinct linked volume codes
//   - A master label holding volumes cannot be deleted
//   - The lifecycle mirrors the ordinary label status machine
package masterlabel
