// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "sekolahku_backend/internals/features/school/timetable/dto"
	model "sekolahku_backend/internals/features/school/timetable/model"
	repository "sekolahku_backend/internals/features/school/timetable/repository"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ============================================
   Controller
============================================ */

type TimetableController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Periods   *repository.TimetablePeriodRepository
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	if v == nil {
		v = validator.New()
	}
	return &TimetableController{
		DB:        db,
		Validator: v,
		Periods:   repository.NewTimetablePeriodRepository(db),
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
   PERIODS (時限)
============================================ */

// GET /api/public/timetable/periods
func (ctl *TimetableController) ListPeriods(c *fiber.Ctx) error {
	rows, err := ctl.Periods.LoadPeriods()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jam pelajaran")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/timetable/resolve?at=2025-04-08T10:32
// Jadwal kosong → data nil. Param `at` kosong → pakai waktu server.
func (ctl *TimetableController) ResolveAt(c *fiber.Ctx) error {
	ts := time.Now()
	if at := strings.TrimSpace(c.Query("at")); at != "" {
		norm := dbtime.NormalizeTimestamp(at)
		if norm == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format timestamp tidak dikenal")
		}
		parsed, err := dbtime.ParseNormalized(*norm)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format timestamp tidak dikenal")
		}
		ts = parsed
	}

	rec, err := ctl.Periods.ResolvePeriodAt(ts)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca jadwal jam pelajaran")
	}
	if rec == nil {
		return helper.JsonOK(c, "jadwal jam pelajaran belum diisi", nil)
	}
	return helper.JsonOK(c, "ok", rec)
}

// POST /api/a/timetable/periods — upsert per nomor jam
func (ctl *TimetableController) UpsertPeriod(c *fiber.Ctx) error {
	var p dto.TimetablePeriodUpsertDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	ent, err := p.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format jam tidak valid: "+err.Error())
	}
	if !ent.TimetablePeriodStart.Time.Before(ent.TimetablePeriodEnd.Time) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}

	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "timetable_period_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"timetable_period_start", "timetable_period_end", "timetable_period_note",
		}),
	}).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jam pelajaran")
	}
	return helper.JsonCreated(c, "Berhasil menyimpan jam pelajaran", ent)
}

/* ============================================
   WEEKLY TIMETABLE (週時間割)
============================================ */

// GET /api/public/timetable/weekly?year=&department_id=&term=&weekday=
func (ctl *TimetableController) ListWeekly(c *fiber.Ctx) error {
	var f dto.WeeklyTimetableFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	q := ctl.DB.Model(&model.WeeklyTimetableModel{})
	if f.Year != nil {
		q = q.Where("weekly_timetable_year = ?", *f.Year)
	}
	if f.DepartmentID != nil {
		q = q.Where("weekly_timetable_department_id = ?", *f.DepartmentID)
	}
	if f.Term != nil {
		q = q.Where("weekly_timetable_term = ?", *f.Term)
	}
	if f.Weekday != nil {
		q = q.Where("weekly_timetable_weekday = ?", *f.Weekday)
	}

	var rows []model.WeeklyTimetableModel
	if err := q.
		Order("weekly_timetable_weekday, weekly_timetable_period").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jadwal mingguan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/a/timetable/weekly
func (ctl *TimetableController) CreateWeekly(c *fiber.Ctx) error {
	var p dto.WeeklyTimetableCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal membuat slot jadwal (slot sudah terisi?)")
	}
	return helper.JsonCreated(c, "Berhasil membuat slot jadwal", ent)
}
