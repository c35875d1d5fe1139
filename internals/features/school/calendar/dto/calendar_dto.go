// file: internals/features/school/calendar/dto/calendar_dto.go
package dto

import (
	"time"

	"sekolahku_backend/internals/features/school/calendar/model"
)

// =======================
// Request DTO
// =======================

type ClassDayCreateDTO struct {
	// format tanggal: "2006-01-02"
	ClassDayDate    string  `json:"class_day_date"    validate:"required,datetime=2006-01-02"`
	ClassDayTerm    int     `json:"class_day_term"    validate:"required,min=1"`
	ClassDayWeekday int     `json:"class_day_weekday" validate:"min=0,max=8"`
	ClassDayNote    *string `json:"class_day_note,omitempty" validate:"omitempty,max=50"`
}

func (p *ClassDayCreateDTO) ToModel() (model.ClassDayModel, error) {
	d, err := time.Parse("2006-01-02", p.ClassDayDate)
	if err != nil {
		return model.ClassDayModel{}, err
	}
	return model.ClassDayModel{
		ClassDayDate:    d,
		ClassDayTerm:    p.ClassDayTerm,
		ClassDayWeekday: p.ClassDayWeekday,
		ClassDayNote:    p.ClassDayNote,
	}, nil
}

// (opsional) filter kalender
type ClassDayFilterDTO struct {
	Term *int    `query:"term" validate:"omitempty,min=1"`
	From *string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   *string `query:"to"   validate:"omitempty,datetime=2006-01-02"`
}
