// file: internals/features/school/timetable/service/period_resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

func period(t *testing.T, number int, start, end string) model.TimetablePeriodModel {
	t.Helper()
	s, err := dbtime.Parse(start)
	require.NoError(t, err)
	e, err := dbtime.Parse(end)
	require.NoError(t, err)
	return model.TimetablePeriodModel{
		TimetablePeriodNumber: number,
		TimetablePeriodStart:  s,
		TimetablePeriodEnd:    e,
	}
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	dt, err := time.Parse("2006-01-02 15:04:05", "2025-04-08 "+clock)
	require.NoError(t, err)
	return dt
}

func TestResolvePeriod(t *testing.T) {
	periods := []model.TimetablePeriodModel{
		period(t, 1, "08:50", "10:30"),
		period(t, 2, "10:35", "12:15"),
		period(t, 3, "13:00", "14:40"),
	}

	var cases = []struct {
		name  string
		clock string
		want  int
	}{
		{"di dalam jam ke-1", "09:00:00", 1},
		{"tepat di awal jam ke-1", "08:50:00", 1},
		{"datang kepagian → jam ke-1", "08:00:00", 1},
		{"jeda antar jam → jam berikutnya", "10:32:00", 2},
		{"tepat di akhir jam ke-1 → jam ke-2", "10:30:00", 2},
		{"tepat di awal jam ke-2", "10:35:00", 2},
		{"istirahat siang → jam ke-3", "12:30:00", 3},
		{"tepat di akhir jam terakhir → jam terakhir", "14:40:00", 3},
		{"setelah semua jam → jam terakhir", "15:00:00", 3},
		{"malam hari → jam terakhir", "23:59:59", 3},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got := ResolvePeriod(at(t, tcase.clock), periods)
			require.NotNil(t, got)
			assert.Equal(t, tcase.want, got.TimetablePeriodNumber)
		})
	}
}

func TestResolvePeriodEmptyTimetable(t *testing.T) {
	assert.Nil(t, ResolvePeriod(at(t, "10:00:00"), nil))
	assert.Nil(t, ResolvePeriod(at(t, "10:00:00"), []model.TimetablePeriodModel{}))
}

func TestResolvePeriodSinglePeriod(t *testing.T) {
	periods := []model.TimetablePeriodModel{period(t, 1, "08:50", "10:30")}

	var cases = []struct {
		name  string
		clock string
	}{
		{"sebelum", "07:00:00"},
		{"di dalam", "09:15:00"},
		{"sesudah", "11:00:00"},
	}
	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got := ResolvePeriod(at(t, tcase.clock), periods)
			require.NotNil(t, got)
			assert.Equal(t, 1, got.TimetablePeriodNumber)
		})
	}
}

// Jadwal rapat (akhir jam = awal jam berikut): batas masuk jam berikutnya,
// interval setengah-terbuka.
func TestResolvePeriodContiguousBoundary(t *testing.T) {
	periods := []model.TimetablePeriodModel{
		period(t, 1, "08:50", "10:30"),
		period(t, 2, "10:30", "12:15"),
	}

	got := ResolvePeriod(at(t, "10:30:00"), periods)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.TimetablePeriodNumber)
}

// Tanggal dan zona waktu tidak boleh mempengaruhi hasil: yang dipakai hanya
// jam-menit-detik.
func TestResolvePeriodIgnoresDateAndZone(t *testing.T) {
	periods := []model.TimetablePeriodModel{
		period(t, 1, "08:50", "10:30"),
		period(t, 2, "10:35", "12:15"),
	}

	wib := time.FixedZone("WIB", 7*3600)
	a := time.Date(2025, 4, 8, 10, 32, 0, 0, time.UTC)
	b := time.Date(1999, 12, 31, 10, 32, 0, 0, wib)

	ra := ResolvePeriod(a, periods)
	rb := ResolvePeriod(b, periods)
	require.NotNil(t, ra)
	require.NotNil(t, rb)
	assert.Equal(t, ra.TimetablePeriodNumber, rb.TimetablePeriodNumber)
}
