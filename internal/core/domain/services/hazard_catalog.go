package services

import (
	"strings"

	"labeling/internal/core/domain/model/volume"
)

// HazardEntry describes one dangerous-goods product as cataloged by its UN
// number.
type HazardEntry struct {
	UNNumber     string
	Product      string
	RiskClass    string
	RiskNumber   string
	PackingGroup string
}

// HazardCatalog resolves UN numbers to their dangerous-goods classification.
// The table is a fixed in-process snapshot of the products the warehouse
// actually handles; an unknown UN number simply resolves to nothing and the
// volume keeps its unclassified default.
type HazardCatalog struct {
	byUN map[string]HazardEntry
}

// NewHazardCatalog creates a catalog preloaded with the standard table.
func NewHazardCatalog() HazardCatalog {
	entries := []HazardEntry{
		{UNNumber: "1090", Product: "Acetona", RiskClass: "3", RiskNumber: "33", PackingGroup: "II"},
		{UNNumber: "1203", Product: "Gasolina", RiskClass: "3", RiskNumber: "33", PackingGroup: "II"},
		{UNNumber: "1219", Product: "Álcool isopropílico", RiskClass: "3", RiskNumber: "30", PackingGroup: "II"},
		{UNNumber: "1230", Product: "Metanol", RiskClass: "3", RiskNumber: "336", PackingGroup: "II"},
		{UNNumber: "1263", Product: "Tinta", RiskClass: "3", RiskNumber: "30", PackingGroup: "II"},
		{UNNumber: "1267", Product: "Petróleo bruto", RiskClass: "3", RiskNumber: "30", PackingGroup: "I"},
		{UNNumber: "1760", Product: "Líquido corrosivo N.E.", RiskClass: "8", RiskNumber: "80", PackingGroup: "III"},
		{UNNumber: "1789", Product: "Ácido clorídrico", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "1791", Product: "Solução de hipoclorito", RiskClass: "8", RiskNumber: "80", PackingGroup: "III"},
		{UNNumber: "1824", Product: "Solução de hidróxido de sódio", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "1830", Product: "Ácido sulfúrico", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "1888", Product: "Clorofórmio", RiskClass: "6.1", RiskNumber: "60", PackingGroup: "III"},
		{UNNumber: "1993", Product: "Líquido inflamável N.E.", RiskClass: "3", RiskNumber: "30", PackingGroup: "III"},
		{UNNumber: "2031", Product: "Ácido nítrico", RiskClass: "8", RiskNumber: "856", PackingGroup: "II"},
		{UNNumber: "2209", Product: "Solução de formaldeído", RiskClass: "8", RiskNumber: "80", PackingGroup: "III"},
		{UNNumber: "2218", Product: "Ácido acrílico", RiskClass: "8", RiskNumber: "89", PackingGroup: "II"},
		{UNNumber: "2789", Product: "Ácido acético glacial", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "2810", Product: "Líquido tóxico orgânico", RiskClass: "6.1", RiskNumber: "60", PackingGroup: "III"},
		{UNNumber: "2924", Product: "Líquido inflamável corrosivo", RiskClass: "3", RiskNumber: "83", PackingGroup: "II"},
		{UNNumber: "3082", Product: "Substância perigosa ao meio ambiente", RiskClass: "9", RiskNumber: "90", PackingGroup: "III"},
		{UNNumber: "3264", Product: "Líquido corrosivo ácido inorgânico", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "3265", Product: "Líquido corrosivo ácido orgânico", RiskClass: "8", RiskNumber: "80", PackingGroup: "III"},
		{UNNumber: "3266", Product: "Líquido corrosivo básico inorgânico", RiskClass: "8", RiskNumber: "80", PackingGroup: "II"},
		{UNNumber: "3267", Product: "Líquido corrosivo básico orgânico", RiskClass: "8", RiskNumber: "80", PackingGroup: "III"},
		{UNNumber: "3291", Product: "Resíduo clínico não especificado", RiskClass: "6.2", RiskNumber: "60", PackingGroup: "II"},
		{UNNumber: "3480", Product: "Baterias de íon lítio", RiskClass: "9", RiskNumber: "90", PackingGroup: "II"},
		{UNNumber: "3481", Product: "Baterias de íon lítio em equipamentos", RiskClass: "9", RiskNumber: "90", PackingGroup: "II"},
	}

	byUN := make(map[string]HazardEntry, len(entries))
	for _, e := range entries {
		byUN[e.UNNumber] = e
	}

	return HazardCatalog{byUN: byUN}
}

// Lookup resolves a UN number. The second return reports whether the number
// is cataloged.
func (c HazardCatalog) Lookup(unNumber string) (HazardEntry, bool) {
	entry, ok := c.byUN[strings.TrimSpace(unNumber)]
	return entry, ok
}

// Classify applies the catalog entry for the given UN number to the volume.
// A cataloged number marks the volume as dangerous goods with the entry's
// risk data; an unknown or blank number records the raw inputs and leaves
// the classification unclassified.
func (c HazardCatalog) Classify(vol *volume.Volume, unNumber, riskCode, hazardClass string) {
	if entry, ok := c.Lookup(unNumber); ok {
		if riskCode == "" {
			riskCode = entry.RiskNumber
		}
		if hazardClass == "" {
			hazardClass = "perigosa"
		}
	}

	vol.Classify(strings.TrimSpace(unNumber), riskCode, hazardClass)
}
