// file: internals/features/school/timetable/service/period_resolver.go
package service

import (
	"time"

	"sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// ResolvePeriod menentukan jam pelajaran untuk sebuah timestamp.
// periods harus sudah urut naik per nomor jam (= urut kronologis) dan tidak
// saling tumpang tindih; fungsi ini murni, tanpa I/O.
//
// Aturan:
//   - interval setengah-terbuka [start, end): tepat di end masuk jam berikutnya
//   - sebelum jam pertama → jam pertama (datang kepagian tetap jam ke-1)
//   - di/atau setelah akhir jam terakhir → jam terakhir
//   - jatuh di jeda antar jam → jam yang akan datang, bukan yang baru selesai
//   - periods kosong → nil (belum ada jadwal, bukan error)
func ResolvePeriod(ts time.Time, periods []model.TimetablePeriodModel) *model.TimetablePeriodModel {
	if len(periods) == 0 {
		return nil
	}

	t := dbtime.From(ts).Time

	for i := range periods {
		if !t.Before(periods[i].TimetablePeriodStart.Time) && t.Before(periods[i].TimetablePeriodEnd.Time) {
			return &periods[i]
		}
	}

	first := &periods[0]
	last := &periods[len(periods)-1]
	if t.Before(first.TimetablePeriodStart.Time) {
		return first
	}
	if !t.Before(last.TimetablePeriodEnd.Time) {
		return last
	}
	for i := 0; i < len(periods)-1; i++ {
		if !t.Before(periods[i].TimetablePeriodEnd.Time) && t.Before(periods[i+1].TimetablePeriodStart.Time) {
			return &periods[i+1]
		}
	}
	// jadwal rapi seharusnya tidak sampai sini
	return last
}
