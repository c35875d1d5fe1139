// file: internals/features/school/timetable/model/timetable_period_model.go
package model

import (
	"time"

	"sekolahku_backend/internals/helpers/dbtime"
)

// TimetablePeriodModel: master jam pelajaran harian (時限).
// Satu baris = satu jam pelajaran dengan jam mulai/selesai; nomor jam unik
// dan urut naik sekaligus urut kronologis.
type TimetablePeriodModel struct {
	TimetablePeriodID     int        `gorm:"column:timetable_period_id;primaryKey;autoIncrement" json:"timetable_period_id"`
	TimetablePeriodNumber int        `gorm:"column:timetable_period_number;type:smallint;not null;uniqueIndex" json:"timetable_period_number"`
	TimetablePeriodStart  dbtime.Tod `gorm:"column:timetable_period_start;type:time;not null" json:"timetable_period_start"`
	TimetablePeriodEnd    dbtime.Tod `gorm:"column:timetable_period_end;type:time;not null" json:"timetable_period_end"`
	TimetablePeriodNote   *string    `gorm:"column:timetable_period_note;type:text" json:"timetable_period_note,omitempty"`

	TimetablePeriodCreatedAt time.Time `gorm:"column:timetable_period_created_at;not null;autoCreateTime" json:"timetable_period_created_at"`
	TimetablePeriodUpdatedAt time.Time `gorm:"column:timetable_period_updated_at;not null;autoUpdateTime" json:"timetable_period_updated_at"`
}

func (TimetablePeriodModel) TableName() string { return "timetable_periods" }
