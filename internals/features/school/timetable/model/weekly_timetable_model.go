// file: internals/features/school/timetable/model/weekly_timetable_model.go
package model

import (
	"time"
)

// WeeklyTimetableModel: jadwal mingguan (週時間割) per tahun ajaran, jurusan,
// periode, hari, dan jam pelajaran. Subject/classroom boleh kosong (slot
// belum terisi).
type WeeklyTimetableModel struct {
	WeeklyTimetableID           int  `gorm:"column:weekly_timetable_id;primaryKey;autoIncrement" json:"weekly_timetable_id"`
	WeeklyTimetableYear         int  `gorm:"column:weekly_timetable_year;not null;index:idx_weekly_slot,unique" json:"weekly_timetable_year"`
	WeeklyTimetableDepartmentID int  `gorm:"column:weekly_timetable_department_id;type:smallint;not null;index:idx_weekly_slot,unique" json:"weekly_timetable_department_id"`
	WeeklyTimetableTerm         int  `gorm:"column:weekly_timetable_term;type:smallint;not null;index:idx_weekly_slot,unique" json:"weekly_timetable_term"`
	WeeklyTimetableWeekday      int  `gorm:"column:weekly_timetable_weekday;type:smallint;not null;index:idx_weekly_slot,unique" json:"weekly_timetable_weekday"`
	WeeklyTimetablePeriod       int  `gorm:"column:weekly_timetable_period;type:smallint;not null;index:idx_weekly_slot,unique" json:"weekly_timetable_period"`
	WeeklyTimetableSubjectID    *int `gorm:"column:weekly_timetable_subject_id;type:smallint" json:"weekly_timetable_subject_id,omitempty"`
	WeeklyTimetableClassroomID  *int `gorm:"column:weekly_timetable_classroom_id;type:smallint" json:"weekly_timetable_classroom_id,omitempty"`
	// contoh: "C304/Pak Budi" — ruangan pengganti / pengajar
	WeeklyTimetableNote *string `gorm:"column:weekly_timetable_note;type:varchar(50)" json:"weekly_timetable_note,omitempty"`

	WeeklyTimetableCreatedAt time.Time `gorm:"column:weekly_timetable_created_at;not null;autoCreateTime" json:"weekly_timetable_created_at"`
	WeeklyTimetableUpdatedAt time.Time `gorm:"column:weekly_timetable_updated_at;not null;autoUpdateTime" json:"weekly_timetable_updated_at"`
}

func (WeeklyTimetableModel) TableName() string { return "weekly_timetables" }
