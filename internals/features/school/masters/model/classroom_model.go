// file: internals/features/school/masters/model/classroom_model.go
package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID       int    `gorm:"column:classroom_id;type:smallint;primaryKey;autoIncrement:false" json:"classroom_id"`
	ClassroomName     string `gorm:"column:classroom_name;type:varchar(64);not null" json:"classroom_name"`
	ClassroomCapacity int    `gorm:"column:classroom_capacity;type:smallint;not null" json:"classroom_capacity"`
	// fasilitas ruangan ("proyektor", "plc", ...) — query pakai ANY(...)
	ClassroomFacilities pq.StringArray `gorm:"column:classroom_facilities;type:text[]" json:"classroom_facilities,omitempty"`
	ClassroomNote       *string        `gorm:"column:classroom_note;type:varchar(50)" json:"classroom_note,omitempty"`

	ClassroomCreatedAt time.Time `gorm:"column:classroom_created_at;not null;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `gorm:"column:classroom_updated_at;not null;autoUpdateTime" json:"classroom_updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeSave(tx *gorm.DB) error {
	m.ClassroomName = strings.TrimSpace(m.ClassroomName)
	return nil
}
