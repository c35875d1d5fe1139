// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"gorm.io/datatypes"
)

// =======================
// Request DTO
// =======================

type EntryLogCreateDTO struct {
	StudentNumber int    `json:"student_number" validate:"required,min=1"`
	DepartmentID  int    `json:"department_id"  validate:"required,min=1"`
	Direction     string `json:"direction"      validate:"required,oneof=masuk keluar"`
	// timestamp bebas dari klien ("2025-04-08T08:50", dsb). Kosong → waktu
	// server. Format tidak dikenal juga → waktu server (soft fail).
	OccurredAt string `json:"occurred_at,omitempty"`
}

type CameraLogCreateDTO struct {
	RecordedAt string         `json:"recorded_at" validate:"required,min=1"`
	Source     *string        `json:"source,omitempty"`
	Status     *string        `json:"status,omitempty"`
	MarkerName *string        `json:"marker_name,omitempty"`
	Score      *float64       `json:"score,omitempty"`
	Message    *string        `json:"message,omitempty"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
}

// (opsional) filter listing log
type EntryLogFilterDTO struct {
	DepartmentID  *int    `query:"department_id"  validate:"omitempty,min=1"`
	StudentNumber *int    `query:"student_number" validate:"omitempty,min=1"`
	Direction     *string `query:"direction"      validate:"omitempty,oneof=masuk keluar"`
	From          *string `query:"from"           validate:"omitempty,datetime=2006-01-02"`
	To            *string `query:"to"             validate:"omitempty,datetime=2006-01-02"`
}
