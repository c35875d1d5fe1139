// file: internals/features/school/calendar/model/class_day_model.go
package model

import (
	"time"
)

// ClassDayModel: kalender hari kuliah (授業計画). Satu baris per tanggal:
// periode akademik + hari jadwal yang dipakai hari itu. Hari jadwal bisa
// beda dari hari kalender (mis. Kamis mengikuti jadwal Senin saat kejar
// materi); 0 = hari kuliah tanpa jadwal mingguan (periode intensif).
type ClassDayModel struct {
	ClassDayDate    time.Time `gorm:"column:class_day_date;type:date;primaryKey" json:"class_day_date"`
	ClassDayTerm    int       `gorm:"column:class_day_term;type:smallint;not null" json:"class_day_term"`
	ClassDayWeekday int       `gorm:"column:class_day_weekday;type:smallint;not null" json:"class_day_weekday"`
	ClassDayNote    *string   `gorm:"column:class_day_note;type:varchar(50)" json:"class_day_note,omitempty"`

	ClassDayCreatedAt time.Time `gorm:"column:class_day_created_at;not null;autoCreateTime" json:"class_day_created_at"`
	ClassDayUpdatedAt time.Time `gorm:"column:class_day_updated_at;not null;autoUpdateTime" json:"class_day_updated_at"`
}

func (ClassDayModel) TableName() string { return "class_days" }
