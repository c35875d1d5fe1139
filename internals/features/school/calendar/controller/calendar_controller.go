// file: internals/features/school/calendar/controller/calendar_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/calendar/dto"
	model "sekolahku_backend/internals/features/school/calendar/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type CalendarController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCalendarController(db *gorm.DB, v *validator.Validate) *CalendarController {
	if v == nil {
		v = validator.New()
	}
	return &CalendarController{DB: db, Validator: v}
}

// GET /api/public/calendar/class-days?term=&from=&to=
func (ctl *CalendarController) ListClassDays(c *fiber.Ctx) error {
	var f dto.ClassDayFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	q := ctl.DB.Model(&model.ClassDayModel{})
	if f.Term != nil {
		q = q.Where("class_day_term = ?", *f.Term)
	}
	if f.From != nil {
		q = q.Where("class_day_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("class_day_date <= ?", *f.To)
	}

	var rows []model.ClassDayModel
	if err := q.Order("class_day_date").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kalender")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/calendar/class-days/today
// Bukan hari kuliah → data nil (bukan error).
func (ctl *CalendarController) GetToday(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var row model.ClassDayModel
	err := ctl.DB.Where("class_day_date = ?", today).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "bukan hari kuliah", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca kalender")
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/a/calendar/class-days — terima satu atau banyak tanggal sekaligus
func (ctl *CalendarController) CreateClassDays(c *fiber.Ctx) error {
	var payload []dto.ClassDayCreateDTO
	if err := c.BodyParser(&payload); err != nil {
		// fallback: satu objek saja
		var one dto.ClassDayCreateDTO
		if err2 := c.BodyParser(&one); err2 != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		payload = []dto.ClassDayCreateDTO{one}
	}
	if len(payload) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload kosong")
	}

	ents := make([]model.ClassDayModel, 0, len(payload))
	for i := range payload {
		if err := ctl.Validator.Struct(&payload[i]); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		ent, err := payload[i].ToModel()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
		}
		ents = append(ents, ent)
	}

	if err := ctl.DB.Create(&ents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan kalender (tanggal dobel?)")
	}
	return helper.JsonCreated(c, "Berhasil menyimpan kalender", ents)
}
