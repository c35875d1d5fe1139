// file: internals/features/school/masters/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mastersCtl "sekolahku_backend/internals/features/school/masters/controller"
)

func MastersPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := mastersCtl.NewMastersController(db, nil)

	api.Get("/departments", ctl.ListDepartments)
	api.Get("/departments/resolve", ctl.ResolveDepartment)
	api.Get("/students", ctl.ListStudents)
	api.Get("/students/official", ctl.GetOfficialStudent)
	api.Get("/subjects", ctl.ListSubjects)
	api.Get("/classrooms", ctl.ListClassrooms)
	api.Get("/weekdays", ctl.ListWeekdays)
	api.Get("/terms", ctl.ListTerms)
}
