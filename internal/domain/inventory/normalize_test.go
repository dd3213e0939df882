package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gudangkita/sparepart-api/internal/domain/inventory"
)

func TestNormalizeUnit_Alias(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"BM100", "BM 100"},
		{"bm100", "BM 100"},
		{"BROKK BM 90", "BM 90"},
		{"Forklift 3T", "Forklift"},
		{"Forklift 3 Ton", "Forklift"},
		{"forklift", "Forklift"},
		{"HCR 120D", "HCR 120D"},
		{"Excavator 01", "Excavator 01"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.NormalizeUnit(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeUnit_KosongJadiTanpaUnit(t *testing.T) {
	assert.Equal(t, inventory.UnitTanpaUnit, inventory.NormalizeUnit(""))
	assert.Equal(t, inventory.UnitTanpaUnit, inventory.NormalizeUnit("   "))
	assert.Equal(t, inventory.UnitTanpaUnit, inventory.NormalizeUnit("-"))
}

func TestNormalizeUnit_TanpaAliasDipertahankan(t *testing.T) {
	// Unit yang tidak ada di tabel alias lolos apa adanya (setelah trim).
	assert.Equal(t, "Crane 25T", inventory.NormalizeUnit("  Crane 25T  "))
}

func TestNormalizeKode(t *testing.T) {
	assert.Equal(t, "FLT-0234", inventory.NormalizeKode("  flt-0234 "))
	assert.Equal(t, "ABC123", inventory.NormalizeKode("a b c 1 2 3"))
	assert.Equal(t, "OLI-SAE40", inventory.NormalizeKode("oli- sae40"))
	assert.Equal(t, "", inventory.NormalizeKode("   "))
}
