// file: internals/features/school/masters/model/department_model.go
package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID   int     `gorm:"column:department_id;type:smallint;primaryKey;autoIncrement:false" json:"department_id"`
	DepartmentName string  `gorm:"column:department_name;type:varchar(64);not null" json:"department_name"`
	DepartmentNote *string `gorm:"column:department_note;type:varchar(50)" json:"department_note,omitempty"`

	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;not null;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;not null;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeSave(tx *gorm.DB) error {
	m.DepartmentName = strings.TrimSpace(m.DepartmentName)
	if m.DepartmentNote != nil {
		n := strings.TrimSpace(*m.DepartmentNote)
		if n == "" {
			m.DepartmentNote = nil
		} else {
			m.DepartmentNote = &n
		}
	}
	return nil
}
