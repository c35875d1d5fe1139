// file: internals/seeds/school/seed_timetable.go
package school

import (
	"log"

	"gorm.io/gorm"

	calendarModel "sekolahku_backend/internals/features/school/calendar/model"
	timetableModel "sekolahku_backend/internals/features/school/timetable/model"
)

func SeedTimetablePeriodsFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[timetableModel.TimetablePeriodModel](filePath) {
		var existing timetableModel.TimetablePeriodModel
		if err := db.
			Where("timetable_period_number = ?", m.TimetablePeriodNumber).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Jam ke-%d sudah ada, lewati...", m.TimetablePeriodNumber)
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed jam ke-%d: %v", m.TimetablePeriodNumber, err)
		}
	}
	log.Println("✅ Seed jam pelajaran selesai.")
}

func SeedWeeklyTimetableFromJSON(db *gorm.DB, filePath string) {
	for _, m := range readJSON[timetableModel.WeeklyTimetableModel](filePath) {
		var existing timetableModel.WeeklyTimetableModel
		if err := db.
			Where("weekly_timetable_year = ? AND weekly_timetable_department_id = ? AND weekly_timetable_term = ? AND weekly_timetable_weekday = ? AND weekly_timetable_period = ?",
				m.WeeklyTimetableYear, m.WeeklyTimetableDepartmentID, m.WeeklyTimetableTerm, m.WeeklyTimetableWeekday, m.WeeklyTimetablePeriod).
			First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed slot jadwal %d/%d/%d/%d/%d: %v",
				m.WeeklyTimetableYear, m.WeeklyTimetableDepartmentID, m.WeeklyTimetableTerm, m.WeeklyTimetableWeekday, m.WeeklyTimetablePeriod, err)
		}
	}
	log.Println("✅ Seed jadwal mingguan selesai.")
}

func SeedClassDaysFromJSON(db *gorm.DB, filePath string) {
	type classDaySeed struct {
		Date    string  `json:"class_day_date"`
		Term    int     `json:"class_day_term"`
		Weekday int     `json:"class_day_weekday"`
		Note    *string `json:"class_day_note,omitempty"`
	}

	for _, s := range readJSON[classDaySeed](filePath) {
		var existing calendarModel.ClassDayModel
		if err := db.Where("class_day_date = ?", s.Date).First(&existing).Error; err == nil {
			continue
		}
		d, err := parseDate(s.Date)
		if err != nil {
			log.Fatalf("❌ Tanggal kalender tidak valid %q: %v", s.Date, err)
		}
		m := calendarModel.ClassDayModel{
			ClassDayDate:    d,
			ClassDayTerm:    s.Term,
			ClassDayWeekday: s.Weekday,
			ClassDayNote:    s.Note,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal seed hari kuliah %s: %v", s.Date, err)
		}
	}
	log.Println("✅ Seed kalender selesai.")
}
