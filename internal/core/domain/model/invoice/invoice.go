// Package invoice defines the read-only snapshot of a fiscal document (nota
// fiscal) that the labeling engine consumes. The invoice source is an external
// collaborator; the engine never writes back to it, so the snapshot is a plain
// value without lifecycle behavior.
package invoice

// Invoice carries the declared totals and shared shipment metadata of one
// fiscal document. DeclaredVolumeCount and DeclaredGrossWeight arrive as the
// operator typed them: the count may be absent or non-numeric and the weight
// is a locale-formatted string; the decomposer owns the tolerant parsing.
type Invoice struct {
	Number      string
	AccessKey   string
	OrderNumber string

	DeclaredVolumeCount int
	DeclaredGrossWeight string

	Sender    string
	Recipient string
	Address   string
	City      string
	State     string
	Carrier   string

	UNNumber    string
	RiskCode    string
	HazardClass string
}
