// file: internals/features/school/timetable/controller/timetable_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	controller "sekolahku_backend/internals/features/school/timetable/controller"
	model "sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TimetablePeriodModel{}, &model.WeeklyTimetableModel{}))

	ctl := controller.NewTimetableController(db, nil)
	app := fiber.New()
	app.Get("/timetable/periods", ctl.ListPeriods)
	app.Get("/timetable/resolve", ctl.ResolveAt)
	app.Post("/timetable/periods", ctl.UpsertPeriod)
	return app, db
}

func seedPeriod(t *testing.T, db *gorm.DB, number int, start, end string) {
	t.Helper()
	s, err := dbtime.Parse(start)
	require.NoError(t, err)
	e, err := dbtime.Parse(end)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.TimetablePeriodModel{
		TimetablePeriodNumber: number,
		TimetablePeriodStart:  s,
		TimetablePeriodEnd:    e,
	}).Error)
}

type resolveEnvelope struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Data    *model.TimetablePeriodModel `json:"data"`
}

func TestResolveAt(t *testing.T) {
	app, db := setupApp(t)
	seedPeriod(t, db, 1, "08:50", "10:30")
	seedPeriod(t, db, 2, "10:35", "12:15")
	seedPeriod(t, db, 3, "13:00", "14:40")

	var cases = []struct {
		name string
		at   string
		want int
	}{
		{"di dalam jam", "2025-04-08T09:00", 1},
		{"jeda antar jam", "2025-04-08T10:32", 2},
		{"kepagian", "2025-04-08 08:00:00", 1},
		{"setelah jam terakhir", "2025-04-08T15:00", 3},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/timetable/resolve?at="+strings.ReplaceAll(tcase.at, " ", "%20"), nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body resolveEnvelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.NotNil(t, body.Data)
			assert.Equal(t, tcase.want, body.Data.TimetablePeriodNumber)
		})
	}
}

func TestResolveAtRejectsUnknownFormat(t *testing.T) {
	app, db := setupApp(t)
	seedPeriod(t, db, 1, "08:50", "10:30")

	req := httptest.NewRequest(http.MethodGet, "/timetable/resolve?at=not-a-date", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResolveAtEmptyTimetable(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/timetable/resolve?at=2025-04-08T10:32", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resolveEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Nil(t, body.Data)
}

func TestUpsertPeriod(t *testing.T) {
	app, db := setupApp(t)

	post := func(payload string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/timetable/periods", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"timetable_period_number":1,"timetable_period_start":"8:50","timetable_period_end":"10:30"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// nomor sama → update, bukan baris baru
	resp = post(`{"timetable_period_number":1,"timetable_period_start":"09:00","timetable_period_end":"10:30"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var rows []model.TimetablePeriodModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "09:00:00", rows[0].TimetablePeriodStart.String())

	// jam mulai >= jam selesai ditolak
	resp = post(`{"timetable_period_number":2,"timetable_period_start":"12:00","timetable_period_end":"11:00"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// format jam rusak ditolak
	resp = post(`{"timetable_period_number":2,"timetable_period_start":"25:99","timetable_period_end":"11:00"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
