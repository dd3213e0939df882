// Package excel membaca dan menulis workbook xlsx (excelize).
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gudangkita/sparepart-api/internal/application/importer"
)

var _ importer.SpreadsheetReader = (*Reader)(nil)

// Reader membaca sheet pertama sebuah workbook menjadi baris map header->nilai.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Read membuka file xlsx dan mengembalikan isi sheet pertama. Baris pertama
// dipakai sebagai header; header kosong dilewati, header duplikat yang menang
// adalah kolom paling kiri.
func (r *Reader) Read(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("buka workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook tidak punya sheet")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("baca sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	var out []map[string]string
	for _, raw := range rows[1:] {
		record := make(map[string]string, len(headers))
		empty := true
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			if _, ok := record[h]; ok {
				continue
			}
			var v string
			if i < len(raw) {
				v = strings.TrimSpace(raw[i])
			}
			record[h] = v
			if v != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}
