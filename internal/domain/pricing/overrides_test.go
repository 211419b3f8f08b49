package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolvePresenceBeatsValue(t *testing.T) {
	id := uuid.New()
	catalog := decimal.NewFromInt(500)

	m := OverrideMap{ItemOverrideKey(id): 0}

	// An explicit zero override must be honored, not treated as absent.
	assert.True(t, m.Resolve(ItemOverrideKey(id), catalog).IsZero())
	assert.True(t, m.Has(ItemOverrideKey(id)))
}

func TestResolveFallsBackWhenAbsent(t *testing.T) {
	catalog := decimal.NewFromInt(500)

	m := OverrideMap{}
	got := m.Resolve(ItemOverrideKey(uuid.New()), catalog)
	assert.True(t, got.Equal(catalog))

	var nilMap OverrideMap
	got = nilMap.Resolve(ImplementationOverrideKey, catalog)
	assert.True(t, got.Equal(catalog))
}

func TestOverrideKeysAreDistinctPerEntity(t *testing.T) {
	id := uuid.New()
	assert.NotEqual(t, PackageOverrideKey(id), ItemOverrideKey(id))
	assert.NotEqual(t, PackageOverrideKey(id), ImplementationOverrideKey)
}
