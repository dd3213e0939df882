package inventory

// ApplyDelta menghitung stok baru dari stok lama dan delta bertanda.
// Stok tidak pernah negatif: delta minus yang melebihi stok dipangkas ke nol,
// bukan ditolak. Informasi yang terpangkas tidak bisa direkonstruksi ulang.
func ApplyDelta(current, delta int64) int64 {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
