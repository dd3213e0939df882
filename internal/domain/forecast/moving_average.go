// Package forecast berisi perhitungan murni analisis pemakaian suku cadang.
package forecast

import "github.com/shopspring/decimal"

// MovingAverage menghitung simple moving average atas deret kuantitas kronologis.
// Hasil selalu sepanjang input; period−1 titik pertama nil (histori belum cukup),
// titik ke-i (i ≥ period−1) adalah rata-rata aritmetika series[i−period+1..i].
// Deret yang lebih pendek dari period menghasilkan deret nil seluruhnya, bukan error.
func MovingAverage(series []int64, period int) []*decimal.Decimal {
	result := make([]*decimal.Decimal, len(series))
	if period < 2 || len(series) < period {
		return result
	}

	divisor := decimal.NewFromInt(int64(period))
	var window int64
	for i, v := range series {
		window += v
		if i >= period {
			window -= series[i-period]
		}
		if i >= period-1 {
			avg := decimal.NewFromInt(window).Div(divisor)
			result[i] = &avg
		}
	}
	return result
}

// NextPeriodForecast mengembalikan prediksi t+1: rata-rata jendela terakhir yang
// terhitung. Ini persistence forecast naif, bukan ekstrapolasi satu langkah;
// nil bila belum ada jendela yang penuh.
func NextPeriodForecast(ma []*decimal.Decimal) *decimal.Decimal {
	for i := len(ma) - 1; i >= 0; i-- {
		if ma[i] != nil {
			return ma[i]
		}
	}
	return nil
}
