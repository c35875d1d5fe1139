// file: internals/features/school/masters/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mastersCtl "sekolahku_backend/internals/features/school/masters/controller"
)

func MastersAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := mastersCtl.NewMastersController(db, nil)

	api.Post("/departments", ctl.CreateDepartment)
	api.Post("/students", ctl.CreateStudent)
	api.Post("/subjects", ctl.CreateSubject)
	api.Post("/classrooms", ctl.CreateClassroom)
}
