// file: internals/features/school/masters/controller/masters_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/masters/dto"
	model "sekolahku_backend/internals/features/school/masters/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type MastersController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMastersController(db *gorm.DB, v *validator.Validate) *MastersController {
	if v == nil {
		v = validator.New()
	}
	return &MastersController{DB: db, Validator: v}
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
   DEPARTMENTS (学科)
============================================ */

// GET /api/public/departments
func (ctl *MastersController) ListDepartments(c *fiber.Ctx) error {
	var rows []model.DepartmentModel
	if err := ctl.DB.Order("department_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar jurusan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/departments/resolve?name=...
// Nama tidak ketemu → data nil (bukan error); dipakai form entri manual.
func (ctl *MastersController) ResolveDepartment(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter name wajib diisi")
	}

	var row model.DepartmentModel
	err := ctl.DB.Where("department_name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "jurusan tidak ditemukan", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari jurusan")
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/a/departments
func (ctl *MastersController) CreateDepartment(c *fiber.Ctx) error {
	var p dto.DepartmentCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal membuat jurusan (ID sudah dipakai?)")
	}
	return helper.JsonCreated(c, "Berhasil membuat jurusan", ent)
}

/* ============================================
   STUDENTS (生徒)
============================================ */

// GET /api/public/students?department_id=&name=&page=&per_page=
func (ctl *MastersController) ListStudents(c *fiber.Ctx) error {
	var f dto.StudentFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	pg := helper.ResolvePaging(c, 30, 100)

	q := ctl.DB.Model(&model.StudentModel{})
	if f.DepartmentID != nil {
		q = q.Where("student_department_id = ?", *f.DepartmentID)
	}
	if f.Name != nil {
		q = q.Where("student_name LIKE ?", "%"+strings.TrimSpace(*f.Name)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_department_id, student_number").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar siswa")
	}

	p := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	p.Count = len(rows)
	return helper.JsonList(c, "ok", rows, p)
}

// GET /api/public/students/official?student_number=&department_id=
// Dipakai validasi absensi: nama resmi dari master, nil kalau tidak terdaftar.
func (ctl *MastersController) GetOfficialStudent(c *fiber.Ctx) error {
	num, err1 := strconv.Atoi(c.Query("student_number"))
	dep, err2 := strconv.Atoi(c.Query("department_id"))
	if err1 != nil || err2 != nil || num < 1 || dep < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_number & department_id wajib angka positif")
	}

	row, err := FindOfficialStudent(ctl.DB, num, dep)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari siswa")
	}
	if row == nil {
		return helper.JsonOK(c, "siswa tidak terdaftar", nil)
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/a/students
func (ctl *MastersController) CreateStudent(c *fiber.Ctx) error {
	var p dto.StudentCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal membuat siswa (nomor sudah dipakai?)")
	}
	return helper.JsonCreated(c, "Berhasil membuat siswa", ent)
}

/* ============================================
   SUBJECTS / CLASSROOMS / WEEKDAYS / TERMS
============================================ */

// GET /api/public/subjects?department_id=
func (ctl *MastersController) ListSubjects(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SubjectModel{})
	if dep := c.QueryInt("department_id"); dep > 0 {
		q = q.Where("subject_department_id = ?", dep)
	}
	var rows []model.SubjectModel
	if err := q.Order("subject_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat mata kuliah")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/a/subjects
func (ctl *MastersController) CreateSubject(c *fiber.Ctx) error {
	var p dto.SubjectCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal membuat mata kuliah")
	}
	return helper.JsonCreated(c, "Berhasil membuat mata kuliah", ent)
}

// GET /api/public/classrooms
func (ctl *MastersController) ListClassrooms(c *fiber.Ctx) error {
	var rows []model.ClassroomModel
	if err := ctl.DB.Order("classroom_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ruangan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/a/classrooms
func (ctl *MastersController) CreateClassroom(c *fiber.Ctx) error {
	var p dto.ClassroomCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal membuat ruangan")
	}
	return helper.JsonCreated(c, "Berhasil membuat ruangan", ent)
}

// GET /api/public/weekdays
func (ctl *MastersController) ListWeekdays(c *fiber.Ctx) error {
	var rows []model.WeekdayModel
	if err := ctl.DB.Order("weekday_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat master hari")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/terms
func (ctl *MastersController) ListTerms(c *fiber.Ctx) error {
	var rows []model.TermModel
	if err := ctl.DB.Order("term_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat master periode")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ============================================
   Shared lookup (dipakai juga oleh attendance)
============================================ */

// FindOfficialStudent: cari siswa resmi di master; tidak ketemu → (nil, nil).
func FindOfficialStudent(db *gorm.DB, studentNumber, departmentID int) (*model.StudentModel, error) {
	var row model.StudentModel
	err := db.
		Where("student_number = ? AND student_department_id = ?", studentNumber, departmentID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
