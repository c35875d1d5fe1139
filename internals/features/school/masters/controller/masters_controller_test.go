// file: internals/features/school/masters/controller/masters_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	controller "sekolahku_backend/internals/features/school/masters/controller"
	model "sekolahku_backend/internals/features/school/masters/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.DepartmentModel{},
		&model.StudentModel{},
	))

	ctl := controller.NewMastersController(db, nil)
	app := fiber.New()
	app.Get("/departments", ctl.ListDepartments)
	app.Get("/departments/resolve", ctl.ResolveDepartment)
	app.Get("/students", ctl.ListStudents)
	app.Get("/students/official", ctl.GetOfficialStudent)
	app.Post("/departments", ctl.CreateDepartment)
	app.Post("/students", ctl.CreateStudent)
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestResolveDepartment(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Create(&model.DepartmentModel{
		DepartmentID:   3,
		DepartmentName: "Teknik Elektronika",
	}).Error)

	var body struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    *model.DepartmentModel `json:"data"`
	}

	resp := get(t, app, "/departments/resolve?name="+url.QueryEscape("Teknik Elektronika"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	assert.Equal(t, 3, body.Data.DepartmentID)

	// nama asing → sukses dengan data nil, bukan 404
	resp = get(t, app, "/departments/resolve?name="+url.QueryEscape("Jurusan Fiktif"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Data)

	// tanpa name → 400
	resp = get(t, app, "/departments/resolve")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetOfficialStudent(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Create(&model.StudentModel{
		StudentDepartmentID: 3,
		StudentNumber:       36,
		StudentName:         "  Bagus Rahmat Hidayat  ",
	}).Error)

	var body struct {
		Success bool                `json:"success"`
		Data    *model.StudentModel `json:"data"`
	}

	resp := get(t, app, "/students/official?student_number=36&department_id=3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	// nama dirapikan oleh hook BeforeSave
	assert.Equal(t, "Bagus Rahmat Hidayat", body.Data.StudentName)

	// tidak terdaftar → sukses dengan data nil
	resp = get(t, app, "/students/official?student_number=99&department_id=3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Data)

	// parameter bukan angka → 400
	resp = get(t, app, "/students/official?student_number=abc&department_id=3")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListStudentsPagination(t *testing.T) {
	app, db := setupApp(t)
	for i := 1; i <= 45; i++ {
		require.NoError(t, db.Create(&model.StudentModel{
			StudentDepartmentID: 1,
			StudentNumber:       i,
			StudentName:         "Siswa Uji",
		}).Error)
	}

	var body struct {
		Success    bool                 `json:"success"`
		Data       []model.StudentModel `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			PerPage    int   `json:"per_page"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
			Count      int   `json:"count"`
		} `json:"pagination"`
	}

	resp := get(t, app, "/students?per_page=20")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 20)
	assert.Equal(t, int64(45), body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNext)

	resp = get(t, app, "/students?per_page=20&page=3")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 5)
	assert.False(t, body.Pagination.HasNext)
	assert.Equal(t, 5, body.Pagination.Count)
}

func TestCreateDepartmentRejectsDuplicate(t *testing.T) {
	app, _ := setupApp(t)

	post := func(payload string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"department_id":1,"department_name":"Teknik Mesin"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(`{"department_id":1,"department_name":"Teknik Mesin Lagi"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = post(`{"department_id":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
