// file: internals/features/school/calendar/controller/calendar_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	controller "sekolahku_backend/internals/features/school/calendar/controller"
	model "sekolahku_backend/internals/features/school/calendar/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ClassDayModel{}))

	ctl := controller.NewCalendarController(db, nil)
	app := fiber.New()
	app.Get("/calendar/class-days", ctl.ListClassDays)
	app.Get("/calendar/class-days/today", ctl.GetToday)
	app.Post("/calendar/class-days", ctl.CreateClassDays)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateClassDaysBulkThenList(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/calendar/class-days", `[
		{"class_day_date":"2025-04-07","class_day_term":1,"class_day_weekday":1},
		{"class_day_date":"2025-04-08","class_day_term":1,"class_day_weekday":2},
		{"class_day_date":"2025-08-04","class_day_term":9,"class_day_weekday":0,"class_day_note":"Kuliah intensif"}
	]`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ClassDayModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var body struct {
		Success bool                  `json:"success"`
		Data    []model.ClassDayModel `json:"data"`
	}
	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/calendar/class-days?term=1", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, 1, body.Data[0].ClassDayWeekday)
	assert.Equal(t, 2, body.Data[1].ClassDayWeekday)
}

func TestCreateClassDaysSingleObjectFallback(t *testing.T) {
	app, db := setupApp(t)

	resp := postJSON(t, app, "/calendar/class-days",
		`{"class_day_date":"2025-04-09","class_day_term":1,"class_day_weekday":3}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ClassDayModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateClassDaysRejectsBadDate(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/calendar/class-days",
		`[{"class_day_date":"09-04-2025","class_day_term":1,"class_day_weekday":3}]`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetToday(t *testing.T) {
	app, db := setupApp(t)

	var body struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    *model.ClassDayModel `json:"data"`
	}

	// kalender kosong → bukan hari kuliah, data nil
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/calendar/class-days/today", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Data)

	// hari ini terdaftar → ketemu. Disimpan sebagai teks tanggal polos,
	// meniru kolom DATE Postgres (sqlite menyimpan time.Time dengan jam).
	require.NoError(t, db.Exec(
		`INSERT INTO class_days
		   (class_day_date, class_day_term, class_day_weekday,
		    class_day_created_at, class_day_updated_at)
		 VALUES (?, 1, 2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		time.Now().Format("2006-01-02"),
	).Error)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/calendar/class-days/today", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	assert.Equal(t, 2, body.Data.ClassDayWeekday)
}
