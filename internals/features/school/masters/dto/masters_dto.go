// file: internals/features/school/masters/dto/masters_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/masters/model"
)

// =======================
// Request DTO
// =======================

type DepartmentCreateDTO struct {
	DepartmentID   int     `json:"department_id"   validate:"required,min=1"`
	DepartmentName string  `json:"department_name" validate:"required,min=2,max=64"`
	DepartmentNote *string `json:"department_note,omitempty" validate:"omitempty,max=50"`
}

func (p *DepartmentCreateDTO) Normalize() {
	p.DepartmentName = strings.TrimSpace(p.DepartmentName)
}

func (p *DepartmentCreateDTO) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		DepartmentNote: p.DepartmentNote,
	}
}

type StudentCreateDTO struct {
	StudentDepartmentID int     `json:"student_department_id" validate:"required,min=1"`
	StudentNumber       int     `json:"student_number"        validate:"required,min=1"`
	StudentName         string  `json:"student_name"          validate:"required,min=2,max=100"`
	StudentNote         *string `json:"student_note,omitempty"`
}

func (p *StudentCreateDTO) Normalize() {
	p.StudentName = strings.TrimSpace(p.StudentName)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentDepartmentID: p.StudentDepartmentID,
		StudentNumber:       p.StudentNumber,
		StudentName:         p.StudentName,
		StudentNote:         p.StudentNote,
	}
}

type SubjectCreateDTO struct {
	SubjectID             int     `json:"subject_id"              validate:"required,min=1"`
	SubjectName           string  `json:"subject_name"            validate:"required,min=2,max=64"`
	SubjectDepartmentID   int     `json:"subject_department_id"   validate:"required,min=1"`
	SubjectCredits        int     `json:"subject_credits"         validate:"required,min=1,max=99"`
	SubjectDepartmentFlag int     `json:"subject_department_flag" validate:"omitempty,min=0"`
	SubjectNote           *string `json:"subject_note,omitempty"  validate:"omitempty,max=50"`
}

func (p *SubjectCreateDTO) Normalize() {
	p.SubjectName = strings.TrimSpace(p.SubjectName)
}

func (p *SubjectCreateDTO) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectID:             p.SubjectID,
		SubjectName:           p.SubjectName,
		SubjectDepartmentID:   p.SubjectDepartmentID,
		SubjectCredits:        p.SubjectCredits,
		SubjectDepartmentFlag: p.SubjectDepartmentFlag,
		SubjectNote:           p.SubjectNote,
	}
}

type ClassroomCreateDTO struct {
	ClassroomID         int      `json:"classroom_id"       validate:"required,min=1"`
	ClassroomName       string   `json:"classroom_name"     validate:"required,min=2,max=64"`
	ClassroomCapacity   int      `json:"classroom_capacity" validate:"required,min=1,max=500"`
	ClassroomFacilities []string `json:"classroom_facilities,omitempty" validate:"omitempty,dive,min=1"`
	ClassroomNote       *string  `json:"classroom_note,omitempty" validate:"omitempty,max=50"`
}

func (p *ClassroomCreateDTO) Normalize() {
	p.ClassroomName = strings.TrimSpace(p.ClassroomName)
	for i, f := range p.ClassroomFacilities {
		p.ClassroomFacilities[i] = strings.TrimSpace(f)
	}
}

func (p *ClassroomCreateDTO) ToModel() model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomID:         p.ClassroomID,
		ClassroomName:       p.ClassroomName,
		ClassroomCapacity:   p.ClassroomCapacity,
		ClassroomFacilities: p.ClassroomFacilities,
		ClassroomNote:       p.ClassroomNote,
	}
}

// (opsional) filter list siswa
type StudentFilterDTO struct {
	DepartmentID *int    `query:"department_id" validate:"omitempty,min=1"`
	Name         *string `query:"name"          validate:"omitempty,min=1"`
}
