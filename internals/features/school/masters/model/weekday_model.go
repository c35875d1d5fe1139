// file: internals/features/school/masters/model/weekday_model.go
package model

// WeekdayModel: master hari. ID 1..7 = Senin..Minggu, 0 = "hari kuliah"
// (placeholder kalender), 8 = hari libur nasional.
type WeekdayModel struct {
	WeekdayID   int     `gorm:"column:weekday_id;type:smallint;primaryKey;autoIncrement:false" json:"weekday_id"`
	WeekdayName string  `gorm:"column:weekday_name;type:varchar(10);not null" json:"weekday_name"`
	WeekdayNote *string `gorm:"column:weekday_note;type:varchar(50)" json:"weekday_note,omitempty"`
}

func (WeekdayModel) TableName() string { return "weekdays" }
