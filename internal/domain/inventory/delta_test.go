package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gudangkita/sparepart-api/internal/domain/inventory"
)

func TestApplyDelta(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		delta   int64
		want    int64
	}{
		{"masuk menaikkan stok", 10, 5, 15},
		{"keluar menurunkan stok", 10, -4, 6},
		{"keluar melebihi stok dipangkas ke nol", 10, -20, 0},
		{"keluar tepat menghabiskan stok", 7, -7, 0},
		{"delta nol tidak mengubah apa pun", 3, 0, 3},
		{"delta negatif pada stok nol tetap nol", 0, -5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ApplyDelta(tc.current, tc.delta))
		})
	}
}
