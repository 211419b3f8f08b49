package pricing

import "github.com/facturalink/cotizador-api/internal/domain/entity"

// SelectPackage maps a usage volume to the cheapest adequate package:
// the one with the smallest DTECapacity that still covers the volume.
// When the volume exceeds every package's capacity the largest tier is
// returned instead of failing, since volume entry is user-driven and
// must never block the wizard. Returns nil for an empty catalog or a
// non-positive volume.
func SelectPackage(catalog []entity.Package, volume int) *entity.Package {
	if len(catalog) == 0 || volume <= 0 {
		return nil
	}

	var best *entity.Package
	var largest *entity.Package

	for i := range catalog {
		p := &catalog[i]
		if largest == nil || p.DTECapacity > largest.DTECapacity {
			largest = p
		}
		if p.DTECapacity >= volume {
			if best == nil || p.DTECapacity < best.DTECapacity {
				best = p
			}
		}
	}

	if best != nil {
		return best
	}
	return largest
}
