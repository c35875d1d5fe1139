package seeds

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	calendarModel "sekolahku_backend/internals/features/school/calendar/model"
	mastersModel "sekolahku_backend/internals/features/school/masters/model"
	timetableModel "sekolahku_backend/internals/features/school/timetable/model"
	school "sekolahku_backend/internals/seeds/school"
)

// MigrateAll menjalankan AutoMigrate seluruh tabel. Dipanggil hanya lewat
// mode seeder (`go run . seed`), bukan tiap boot.
func MigrateAll(db *gorm.DB) {
	log.Println("🛠  AutoMigrate semua tabel...")
	if err := db.AutoMigrate(
		&mastersModel.DepartmentModel{},
		&mastersModel.StudentModel{},
		&mastersModel.SubjectModel{},
		&mastersModel.ClassroomModel{},
		&mastersModel.WeekdayModel{},
		&mastersModel.TermModel{},
		&timetableModel.TimetablePeriodModel{},
		&timetableModel.WeeklyTimetableModel{},
		&calendarModel.ClassDayModel{},
		&attendanceModel.EntryLogModel{},
		&attendanceModel.CameraLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func RunAllSeeds(db *gorm.DB) {
	//* Master
	school.SeedDepartmentsFromJSON(db, "internals/seeds/school/data_departments.json")
	school.SeedWeekdaysFromJSON(db, "internals/seeds/school/data_weekdays.json")
	school.SeedTermsFromJSON(db, "internals/seeds/school/data_terms.json")
	school.SeedClassroomsFromJSON(db, "internals/seeds/school/data_classrooms.json")
	school.SeedSubjectsFromJSON(db, "internals/seeds/school/data_subjects.json")
	school.SeedStudentsFromJSON(db, "internals/seeds/school/data_students.json")

	//* Jadwal
	school.SeedTimetablePeriodsFromJSON(db, "internals/seeds/school/data_timetable_periods.json")
	school.SeedWeeklyTimetableFromJSON(db, "internals/seeds/school/data_weekly_timetable.json")
	school.SeedClassDaysFromJSON(db, "internals/seeds/school/data_class_days.json")

	log.Println("🌱 Seeding selesai.")
}
