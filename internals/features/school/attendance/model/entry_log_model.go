// file: internals/features/school/attendance/model/entry_log_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryDirection string

const (
	DirectionMasuk  EntryDirection = "masuk"
	DirectionKeluar EntryDirection = "keluar"
)

// EntryLogModel: catatan masuk/keluar siswa (入退室). Timestamp disimpan
// apa adanya (naive, tanpa zona) — konversi zona urusan pemanggil.
type EntryLogModel struct {
	EntryLogID           uuid.UUID      `gorm:"column:entry_log_id;type:uuid;primaryKey" json:"entry_log_id"`
	EntryLogStudentNum   int            `gorm:"column:entry_log_student_number;not null" json:"entry_log_student_number"`
	EntryLogStudentName  string         `gorm:"column:entry_log_student_name;type:varchar(100);not null" json:"entry_log_student_name"`
	EntryLogDepartmentID int            `gorm:"column:entry_log_department_id;type:smallint;not null" json:"entry_log_department_id"`
	EntryLogOccurredAt   time.Time      `gorm:"column:entry_log_occurred_at;type:timestamp;not null;index" json:"entry_log_occurred_at"`
	EntryLogDirection    EntryDirection `gorm:"column:entry_log_direction;type:varchar(10);not null" json:"entry_log_direction"`
	// hasil resolusi jam pelajaran saat pencatatan; null kalau jadwal kosong
	EntryLogPeriodNumber *int `gorm:"column:entry_log_period_number;type:smallint" json:"entry_log_period_number,omitempty"`

	EntryLogCreatedAt time.Time `gorm:"column:entry_log_created_at;not null;autoCreateTime" json:"entry_log_created_at"`
}

func (EntryLogModel) TableName() string { return "entry_logs" }

func (m *EntryLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.EntryLogID == uuid.Nil {
		m.EntryLogID = uuid.New()
	}
	m.EntryLogStudentName = strings.TrimSpace(m.EntryLogStudentName)
	return nil
}
