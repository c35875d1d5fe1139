// file: internals/features/school/masters/model/student_model.go
package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// StudentModel: master siswa. PK komposit (department_id, student_number)
// mengikuti penomoran internal sekolah, bukan surrogate key.
type StudentModel struct {
	StudentDepartmentID int     `gorm:"column:student_department_id;type:smallint;primaryKey" json:"student_department_id"`
	StudentNumber       int     `gorm:"column:student_number;primaryKey" json:"student_number"`
	StudentName         string  `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentNote         *string `gorm:"column:student_note;type:text" json:"student_note,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentName = strings.TrimSpace(m.StudentName)
	return nil
}
