// file: internals/features/school/attendance/model/camera_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CameraLogModel: log mentah dari kamera pengenal wajah di pintu.
// recorded_at sengaja string: perangkat lama kirim format campur-campur,
// normalisasi dilakukan belakangan saat dicocokkan ke entry log.
type CameraLogModel struct {
	CameraLogID         uuid.UUID `gorm:"column:camera_log_id;type:uuid;primaryKey" json:"camera_log_id"`
	CameraLogRecordedAt string    `gorm:"column:camera_log_recorded_at;type:text;not null" json:"camera_log_recorded_at"`
	CameraLogSource     *string   `gorm:"column:camera_log_source;type:text" json:"camera_log_source,omitempty"`
	CameraLogStatus     *string   `gorm:"column:camera_log_status;type:text" json:"camera_log_status,omitempty"`
	CameraLogMarkerName *string   `gorm:"column:camera_log_marker_name;type:text" json:"camera_log_marker_name,omitempty"`
	CameraLogScore      *float64  `gorm:"column:camera_log_score" json:"camera_log_score,omitempty"`
	CameraLogMessage    *string   `gorm:"column:camera_log_message;type:text" json:"camera_log_message,omitempty"`
	// payload asli dari perangkat, disimpan utuh untuk debugging
	CameraLogPayload datatypes.JSON `gorm:"column:camera_log_payload;type:jsonb" json:"camera_log_payload,omitempty"`

	CameraLogCreatedAt time.Time `gorm:"column:camera_log_created_at;not null;autoCreateTime" json:"camera_log_created_at"`
}

func (CameraLogModel) TableName() string { return "camera_logs" }

func (m *CameraLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.CameraLogID == uuid.Nil {
		m.CameraLogID = uuid.New()
	}
	return nil
}
