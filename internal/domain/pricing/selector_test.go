package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturalink/cotizador-api/internal/domain/entity"
)

func tieredCatalog() []entity.Package {
	return []entity.Package{
		{ID: uuid.New(), Name: "Emprendedor", DTECapacity: 500},
		{ID: uuid.New(), Name: "Pyme", DTECapacity: 2000},
		{ID: uuid.New(), Name: "Empresarial", DTECapacity: 10000},
	}
}

func TestSelectPackage(t *testing.T) {
	catalog := tieredCatalog()

	tests := []struct {
		name   string
		volume int
		want   string
	}{
		{name: "smallest adequate tier", volume: 300, want: "Emprendedor"},
		{name: "exact capacity match", volume: 500, want: "Emprendedor"},
		{name: "next tier above boundary", volume: 501, want: "Pyme"},
		{name: "mid tier", volume: 1500, want: "Pyme"},
		{name: "overflow selects largest", volume: 50000, want: "Empresarial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPackage(catalog, tt.volume)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestSelectPackageUnorderedCatalog(t *testing.T) {
	catalog := tieredCatalog()
	catalog[0], catalog[2] = catalog[2], catalog[0]

	got := SelectPackage(catalog, 300)
	require.NotNil(t, got)
	assert.Equal(t, "Emprendedor", got.Name)
}

func TestSelectPackageNoMatch(t *testing.T) {
	assert.Nil(t, SelectPackage(nil, 100))
	assert.Nil(t, SelectPackage(tieredCatalog(), 0))
	assert.Nil(t, SelectPackage(tieredCatalog(), -5))
}
