// file: internals/route/details/logs_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	helper "sekolahku_backend/internals/helpers"
	middlewares "sekolahku_backend/internals/middlewares"
	logsauth "sekolahku_backend/internals/middlewares/logs_auth"
)

type logsLoginDTO struct {
	Password string `json:"password"`
}

// LogsRoutes: halaman logs dilindungi password tunggal (cookie sesi),
// bukan akun per user.
func LogsRoutes(app *fiber.App, db *gorm.DB) {
	app.Post("/logs/login", middlewares.LogsLoginRateLimiter(), func(c *fiber.Ctx) error {
		var p logsLoginDTO
		if err := c.BodyParser(&p); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if !logsauth.CheckPassword(p.Password) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Password salah")
		}
		if err := logsauth.IssueSession(c); err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonOK(c, "Login logs berhasil", nil)
	})

	gated := app.Group("/api/logs", logsauth.RequireLogsSession())
	attendanceRoute.AttendanceLogsRoutes(gated, db)
}
