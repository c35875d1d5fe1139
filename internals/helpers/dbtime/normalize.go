// file: internals/helpers/dbtime/normalize.go
package dbtime

import (
	"strings"
	"time"
)

// Layout kandidat untuk timestamp bebas dari klien. Urutan penting:
// yang pertama cocok, itu yang dipakai.
var normalizeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
}

const canonicalLayout = "2006-01-02 15:04:05"

// NormalizeTimestamp merapikan input timestamp bebas ("2025-04-08T08:50",
// "2025-04-08 08:50:00.123456", ...) ke bentuk kanonik "YYYY-MM-DD HH:MM:SS".
// Pecahan detik dibuang. Input kosong atau tidak dikenal → nil, bukan error:
// pemanggil wajib cek nil (timestamp bebas dari user bukan kondisi fatal).
func NormalizeTimestamp(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.Replace(s, "T", " ", 1) // gaya ISO-8601 → spasi

	for _, layout := range normalizeLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			out := dt.Format(canonicalLayout)
			return &out
		}
	}
	return nil
}

// ParseNormalized membaca hasil NormalizeTimestamp kembali jadi time.Time.
func ParseNormalized(s string) (time.Time, error) {
	return time.Parse(canonicalLayout, s)
}
