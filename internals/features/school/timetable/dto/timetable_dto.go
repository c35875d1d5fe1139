// file: internals/features/school/timetable/dto/timetable_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// =======================
// Request DTO
// =======================

// Jam dikirim sebagai teks ("8:50" / "08:50" / "08:50:00"); parsing ketat
// dilakukan di ToModel lewat dbtime.Parse.
type TimetablePeriodUpsertDTO struct {
	TimetablePeriodNumber int     `json:"timetable_period_number" validate:"required,min=1,max=20"`
	TimetablePeriodStart  string  `json:"timetable_period_start"  validate:"required"`
	TimetablePeriodEnd    string  `json:"timetable_period_end"    validate:"required"`
	TimetablePeriodNote   *string `json:"timetable_period_note,omitempty"`
}

func (p *TimetablePeriodUpsertDTO) Normalize() {
	p.TimetablePeriodStart = strings.TrimSpace(p.TimetablePeriodStart)
	p.TimetablePeriodEnd = strings.TrimSpace(p.TimetablePeriodEnd)
}

func (p *TimetablePeriodUpsertDTO) ToModel() (model.TimetablePeriodModel, error) {
	start, err := dbtime.Parse(p.TimetablePeriodStart)
	if err != nil {
		return model.TimetablePeriodModel{}, err
	}
	end, err := dbtime.Parse(p.TimetablePeriodEnd)
	if err != nil {
		return model.TimetablePeriodModel{}, err
	}
	return model.TimetablePeriodModel{
		TimetablePeriodNumber: p.TimetablePeriodNumber,
		TimetablePeriodStart:  start,
		TimetablePeriodEnd:    end,
		TimetablePeriodNote:   p.TimetablePeriodNote,
	}, nil
}

type WeeklyTimetableCreateDTO struct {
	WeeklyTimetableYear         int     `json:"weekly_timetable_year"          validate:"required,min=2000,max=2100"`
	WeeklyTimetableDepartmentID int     `json:"weekly_timetable_department_id" validate:"required,min=1"`
	WeeklyTimetableTerm         int     `json:"weekly_timetable_term"          validate:"required,min=1"`
	WeeklyTimetableWeekday      int     `json:"weekly_timetable_weekday"       validate:"min=0,max=8"`
	WeeklyTimetablePeriod       int     `json:"weekly_timetable_period"        validate:"required,min=1,max=20"`
	WeeklyTimetableSubjectID    *int    `json:"weekly_timetable_subject_id,omitempty"   validate:"omitempty,min=1"`
	WeeklyTimetableClassroomID  *int    `json:"weekly_timetable_classroom_id,omitempty" validate:"omitempty,min=1"`
	WeeklyTimetableNote         *string `json:"weekly_timetable_note,omitempty"         validate:"omitempty,max=50"`
}

func (p *WeeklyTimetableCreateDTO) ToModel() model.WeeklyTimetableModel {
	return model.WeeklyTimetableModel{
		WeeklyTimetableYear:         p.WeeklyTimetableYear,
		WeeklyTimetableDepartmentID: p.WeeklyTimetableDepartmentID,
		WeeklyTimetableTerm:         p.WeeklyTimetableTerm,
		WeeklyTimetableWeekday:      p.WeeklyTimetableWeekday,
		WeeklyTimetablePeriod:       p.WeeklyTimetablePeriod,
		WeeklyTimetableSubjectID:    p.WeeklyTimetableSubjectID,
		WeeklyTimetableClassroomID:  p.WeeklyTimetableClassroomID,
		WeeklyTimetableNote:         p.WeeklyTimetableNote,
	}
}

// (opsional) filter jadwal mingguan
type WeeklyTimetableFilterDTO struct {
	Year         *int `query:"year"          validate:"omitempty,min=2000,max=2100"`
	DepartmentID *int `query:"department_id" validate:"omitempty,min=1"`
	Term         *int `query:"term"          validate:"omitempty,min=1"`
	Weekday      *int `query:"weekday"       validate:"omitempty,min=0,max=8"`
}
