// file: internals/features/school/masters/model/subject_model.go
package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID           int     `gorm:"column:subject_id;type:smallint;primaryKey;autoIncrement:false" json:"subject_id"`
	SubjectName         string  `gorm:"column:subject_name;type:varchar(64);not null" json:"subject_name"`
	SubjectDepartmentID int     `gorm:"column:subject_department_id;type:smallint;not null" json:"subject_department_id"`
	SubjectCredits      int     `gorm:"column:subject_credits;type:smallint;not null" json:"subject_credits"`
	// 0 = mata kuliah biasa, selain itu penanda paket per jurusan
	SubjectDepartmentFlag int     `gorm:"column:subject_department_flag;type:smallint;not null;default:0" json:"subject_department_flag"`
	SubjectNote           *string `gorm:"column:subject_note;type:varchar(50)" json:"subject_note,omitempty"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	return nil
}
