// file: internals/features/school/timetable/repository/timetable_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/features/school/timetable/service"
)

type TimetablePeriodRepository struct {
	DB *gorm.DB
}

func NewTimetablePeriodRepository(db *gorm.DB) *TimetablePeriodRepository {
	return &TimetablePeriodRepository{DB: db}
}

// LoadPeriods membaca seluruh jam pelajaran urut nomor jam, fresh setiap
// panggilan (tanpa cache: admin bisa ubah jadwal kapan saja). Kolom TIME
// di-scan lewat dbtime.Tod; jam yang rusak di DB → error keras, bukan
// di-skip (jadwal rusak itu bug konfigurasi, harus kelihatan).
func (r *TimetablePeriodRepository) LoadPeriods() ([]model.TimetablePeriodModel, error) {
	var rows []model.TimetablePeriodModel
	if err := r.DB.Order("timetable_period_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ResolvePeriodAt = load + resolve dalam satu panggilan, tanpa cache.
// Jadwal kosong → (nil, nil).
func (r *TimetablePeriodRepository) ResolvePeriodAt(ts time.Time) (*model.TimetablePeriodModel, error) {
	periods, err := r.LoadPeriods()
	if err != nil {
		return nil, err
	}
	return service.ResolvePeriod(ts, periods), nil
}
