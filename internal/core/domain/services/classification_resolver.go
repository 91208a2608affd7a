package services

import (
	"strings"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/domain/model/volume"
)

// Literal defaults used when neither the volume nor the invoice carries a
// value for a display field.
const (
	DefaultFieldValue  = "Não informado"
	DefaultStorageArea = "01"
)

// DisplayFields is the fully resolved set of values a label template prints.
// Every field is guaranteed non-empty: resolution degrades to a literal
// default, never to an error.
type DisplayFields struct {
	Sender      string
	Recipient   string
	Address     string
	City        string
	State       string
	Carrier     string
	Weight      string
	HazardClass string
	UNNumber    string
	RiskCode    string
	Area        string
}

// resolution carries everything a single field resolver may consult.
type resolution struct {
	vol   *volume.Volume
	inv   invoice.Invoice
	style render.LayoutStyle
}

// fieldResolver tries one source for one field. It returns the value and
// true when the source could answer, or false to hand off to the next
// resolver in the chain.
type fieldResolver func(r resolution) (string, bool)

// fieldChain is an ordered list of resolvers. The first one that answers
// wins; the chain's literal terminator always answers.
type fieldChain []fieldResolver

func (c fieldChain) resolve(r resolution) string {
	for _, next := range c {
		if value, ok := next(r); ok {
			return value
		}
	}
	return DefaultFieldValue
}

func fromVolume(pick func(volume.Shipment) string) fieldResolver {
	return func(r resolution) (string, bool) {
		value := strings.TrimSpace(pick(r.vol.Shipment()))
		return value, value != ""
	}
}

func fromInvoice(pick func(invoice.Invoice) string) fieldResolver {
	return func(r resolution) (string, bool) {
		value := strings.TrimSpace(pick(r.inv))
		return value, value != ""
	}
}

func literal(value string) fieldResolver {
	return func(resolution) (string, bool) {
		return value, true
	}
}

// styleCarrier answers only when the layout style pins the carrier, which
// makes the override the first link of the carrier chain.
func styleCarrier(r resolution) (string, bool) {
	return r.style.CarrierOverride()
}

// ClassificationResolver is a domain service that derives the display fields
// of a label from a layered fallback: the volume's own values first, then the
// source invoice, then a literal default. The order of each chain is data,
// not control flow, so a test can assert it link by link.
type ClassificationResolver struct {
	sender      fieldChain
	recipient   fieldChain
	address     fieldChain
	city        fieldChain
	state       fieldChain
	carrier     fieldChain
	hazardClass fieldChain
	unNumber    fieldChain
	riskCode    fieldChain
}

// NewClassificationResolver creates a resolver with the standard chains.
func NewClassificationResolver() ClassificationResolver {
	return ClassificationResolver{
		sender: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.Sender }),
			fromInvoice(func(i invoice.Invoice) string { return i.Sender }),
			literal(DefaultFieldValue),
		},
		recipient: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.Recipient }),
			fromInvoice(func(i invoice.Invoice) string { return i.Recipient }),
			literal(DefaultFieldValue),
		},
		address: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.Address }),
			fromInvoice(func(i invoice.Invoice) string { return i.Address }),
			literal(DefaultFieldValue),
		},
		city: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.City }),
			fromInvoice(func(i invoice.Invoice) string { return i.City }),
			literal(DefaultFieldValue),
		},
		state: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.State }),
			fromInvoice(func(i invoice.Invoice) string { return i.State }),
			literal(DefaultFieldValue),
		},
		carrier: fieldChain{
			styleCarrier,
			fromVolume(func(s volume.Shipment) string { return s.Carrier }),
			fromInvoice(func(i invoice.Invoice) string { return i.Carrier }),
			literal(DefaultFieldValue),
		},
		hazardClass: fieldChain{
			fromVolume(func(s volume.Shipment) string {
				if s.HazardClass == volume.HazardUnclassified {
					return ""
				}
				return s.HazardClass
			}),
			fromInvoice(func(i invoice.Invoice) string { return i.HazardClass }),
			literal(volume.HazardUnclassified),
		},
		unNumber: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.UNNumber }),
			fromInvoice(func(i invoice.Invoice) string { return i.UNNumber }),
			literal(""),
		},
		riskCode: fieldChain{
			fromVolume(func(s volume.Shipment) string { return s.RiskCode }),
			fromInvoice(func(i invoice.Invoice) string { return i.RiskCode }),
			literal(""),
		},
	}
}

// Resolve derives the display field set for one volume. It never fails and
// never mutates the volume, so resolving the same volume twice yields the
// same result.
func (c ClassificationResolver) Resolve(vol *volume.Volume, inv invoice.Invoice, style render.LayoutStyle) DisplayFields {
	r := resolution{vol: vol, inv: inv, style: style}

	weight := vol.Weight()
	if weight.IsZero() {
		weight = kernel.ParseWeightOrZero(inv.DeclaredGrossWeight)
	}

	return DisplayFields{
		Sender:      c.sender.resolve(r),
		Recipient:   c.recipient.resolve(r),
		Address:     c.address.resolve(r),
		City:        c.city.resolve(r),
		State:       c.state.resolve(r),
		Carrier:     c.carrier.resolve(r),
		Weight:      weight.Display(),
		HazardClass: c.hazardClass.resolve(r),
		UNNumber:    c.unNumber.resolve(r),
		RiskCode:    c.riskCode.resolve(r),
		Area:        DefaultStorageArea,
	}
}

// Enrich copies missing shipment fields from the invoice onto the volume so
// a committed volume remains self-describing. Enriching twice is a no-op.
func (c ClassificationResolver) Enrich(vol *volume.Volume, inv invoice.Invoice) {
	vol.FillShipmentBlanks(volume.Shipment{
		AccessKey:   inv.AccessKey,
		OrderNumber: inv.OrderNumber,
		Sender:      inv.Sender,
		Recipient:   inv.Recipient,
		Address:     inv.Address,
		City:        inv.City,
		State:       inv.State,
		Carrier:     inv.Carrier,
		UNNumber:    inv.UNNumber,
		RiskCode:    inv.RiskCode,
		HazardClass: inv.HazardClass,
	})
}
