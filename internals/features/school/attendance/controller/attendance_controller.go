// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/attendance/dto"
	model "sekolahku_backend/internals/features/school/attendance/model"
	mastersCtl "sekolahku_backend/internals/features/school/masters/controller"
	timetableRepo "sekolahku_backend/internals/features/school/timetable/repository"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ============================================
   Controller
============================================ */

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Periods   *timetableRepo.TimetablePeriodRepository
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{
		DB:        db,
		Validator: v,
		Periods:   timetableRepo.NewTimetablePeriodRepository(db),
	}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

/* ============================================
   CHECK-IN / CHECK-OUT
   POST /api/u/attendance
============================================ */

func (ctl *AttendanceController) CheckInOut(c *fiber.Ctx) error {
	var p dto.EntryLogCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// 1) Timestamp: normalisasi input bebas; gagal/kosong → waktu server
	occurredAt := time.Now()
	if norm := dbtime.NormalizeTimestamp(p.OccurredAt); norm != nil {
		if parsed, err := dbtime.ParseNormalized(*norm); err == nil {
			occurredAt = parsed
		}
	}

	// 2) Validasi siswa ke master: nama resmi dari DB, bukan dari klien
	student, err := mastersCtl.FindOfficialStudent(ctl.DB, p.StudentNumber, p.DepartmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa master siswa")
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak terdaftar di master")
	}

	// 3) Resolusi jam pelajaran. Error di sini = jadwal rusak di DB → 500
	// (memang harus berisik). Jadwal kosong → period dibiarkan null.
	rec, err := ctl.Periods.ResolvePeriodAt(occurredAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Jadwal jam pelajaran tidak valid: "+err.Error())
	}
	var periodNumber *int
	if rec != nil {
		periodNumber = &rec.TimetablePeriodNumber
	}

	ent := model.EntryLogModel{
		EntryLogStudentNum:   p.StudentNumber,
		EntryLogStudentName:  student.StudentName,
		EntryLogDepartmentID: p.DepartmentID,
		EntryLogOccurredAt:   occurredAt,
		EntryLogDirection:    model.EntryDirection(p.Direction),
		EntryLogPeriodNumber: periodNumber,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan absensi")
	}

	return helper.JsonCreated(c, "Absensi tercatat", fiber.Map{
		"entry_log":       ent,
		"resolved_period": rec,
	})
}

/* ============================================
   LISTING (dibalik gate halaman logs)
============================================ */

// GET /api/logs/entries?department_id=&student_number=&direction=&from=&to=
func (ctl *AttendanceController) ListEntryLogs(c *fiber.Ctx) error {
	var f dto.EntryLogFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	pg := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.EntryLogModel{})
	if f.DepartmentID != nil {
		q = q.Where("entry_log_department_id = ?", *f.DepartmentID)
	}
	if f.StudentNumber != nil {
		q = q.Where("entry_log_student_number = ?", *f.StudentNumber)
	}
	if f.Direction != nil {
		q = q.Where("entry_log_direction = ?", *f.Direction)
	}
	if f.From != nil {
		q = q.Where("entry_log_occurred_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("entry_log_occurred_at < ?", *f.To+" 23:59:59")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log")
	}

	var rows []model.EntryLogModel
	if err := q.
		Order("entry_log_occurred_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log absensi")
	}

	p := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	p.Count = len(rows)
	return helper.JsonList(c, "ok", rows, p)
}

/* ============================================
   CAMERA LOGS
============================================ */

// POST /api/u/camera-logs — ingest dari perangkat kamera
func (ctl *AttendanceController) IngestCameraLog(c *fiber.Ctx) error {
	var p dto.CameraLogCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// recorded_at dinormalkan kalau bisa; kalau tidak, simpan apa adanya
	recordedAt := p.RecordedAt
	if norm := dbtime.NormalizeTimestamp(p.RecordedAt); norm != nil {
		recordedAt = *norm
	}

	ent := model.CameraLogModel{
		CameraLogRecordedAt: recordedAt,
		CameraLogSource:     p.Source,
		CameraLogStatus:     p.Status,
		CameraLogMarkerName: p.MarkerName,
		CameraLogScore:      p.Score,
		CameraLogMessage:    p.Message,
		CameraLogPayload:    p.Payload,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan log kamera")
	}
	return helper.JsonCreated(c, "Log kamera tercatat", ent)
}

// GET /api/logs/camera
func (ctl *AttendanceController) ListCameraLogs(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.Model(&model.CameraLogModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log kamera")
	}

	var rows []model.CameraLogModel
	if err := ctl.DB.
		Order("camera_log_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log kamera")
	}

	p := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	p.Count = len(rows)
	return helper.JsonList(c, "ok", rows, p)
}
