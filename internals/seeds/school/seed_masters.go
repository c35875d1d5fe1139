// file: internals/seeds/school/seed_masters.go
package school

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/masters/model"
)

func readJSON[T any](filePath string) []T {
	log.Println("📥 Membaca file:", filePath)
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}
	var rows []T
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}
	return rows
}

func SeedDepartmentsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.DepartmentModel](filePath) {
		var existing model.DepartmentModel
		if err := db.Where("department_id = ?", m.DepartmentID).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Jurusan %d sudah ada, lewati...", m.DepartmentID)
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed jurusan %d: %v", m.DepartmentID, err)
		}
	}
	log.Println("✅ Seed jurusan selesai.")
}

func SeedWeekdaysFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.WeekdayModel](filePath) {
		var existing model.WeekdayModel
		if err := db.Where("weekday_id = ?", m.WeekdayID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed hari %d: %v", m.WeekdayID, err)
		}
	}
	log.Println("✅ Seed master hari selesai.")
}

func SeedTermsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.TermModel](filePath) {
		var existing model.TermModel
		if err := db.Where("term_id = ?", m.TermID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed periode %d: %v", m.TermID, err)
		}
	}
	log.Println("✅ Seed master periode selesai.")
}

func SeedClassroomsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.ClassroomModel](filePath) {
		var existing model.ClassroomModel
		if err := db.Where("classroom_id = ?", m.ClassroomID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed ruangan %d: %v", m.ClassroomID, err)
		}
	}
	log.Println("✅ Seed ruangan selesai.")
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.SubjectModel](filePath) {
		var existing model.SubjectModel
		if err := db.Where("subject_id = ?", m.SubjectID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed mata kuliah %d: %v", m.SubjectID, err)
		}
	}
	log.Println("✅ Seed mata kuliah selesai.")
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[model.StudentModel](filePath) {
		var existing model.StudentModel
		if err := db.
			Where("student_department_id = ? AND student_number = ?", m.StudentDepartmentID, m.StudentNumber).
			First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed siswa %d-%d: %v", m.StudentDepartmentID, m.StudentNumber, err)
		}
	}
	log.Println("✅ Seed siswa selesai.")
}
