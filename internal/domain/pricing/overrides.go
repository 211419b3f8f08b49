package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverrideMap maps an override key to an agent-entered price that
// replaces the catalog default for a single quote. Presence in the map,
// not truthiness of the value, decides whether the override applies: an
// explicit 0 is a real price and must never fall back to the catalog
// default. The map is owned by the caller; the engine only reads it.
type OverrideMap map[string]float64

// ImplementationOverrideKey is the override key for the package
// implementation fee.
const ImplementationOverrideKey = "implementation"

// PackageOverrideKey returns the override key for a package's annual price.
func PackageOverrideKey(id uuid.UUID) string {
	return "package:" + id.String()
}

// ItemOverrideKey returns the override key for a line item's resolved price.
func ItemOverrideKey(id uuid.UUID) string {
	return "item:" + id.String()
}

// Resolve returns the override stored under key if one is present, and
// the catalog value otherwise.
func (m OverrideMap) Resolve(key string, catalogValue decimal.Decimal) decimal.Decimal {
	if v, ok := m[key]; ok {
		return decimal.NewFromFloat(v)
	}
	return catalogValue
}

// Has reports whether an override is stored under key.
func (m OverrideMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}
