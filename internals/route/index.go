// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → master data & jadwal, read-only
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// USER → perangkat absensi / kamera (tanpa login; jaringan lokal sekolah)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u")

	// ADMIN → pemeliharaan master & jadwal
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolPublicRoutes(public, db)
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(user, db)

	log.Println("[INFO] Mounting Logs routes (password gate)...")
	routeDetails.LogsRoutes(app, db)
}
