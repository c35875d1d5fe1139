// file: internals/features/school/masters/model/term_model.go
package model

// TermModel: master periode akademik (I..IV + periode intensif).
type TermModel struct {
	TermID   int     `gorm:"column:term_id;type:smallint;primaryKey;autoIncrement:false" json:"term_id"`
	TermName string  `gorm:"column:term_name;type:varchar(32);not null" json:"term_name"`
	TermNote *string `gorm:"column:term_note;type:varchar(50)" json:"term_note,omitempty"`
}

func (TermModel) TableName() string { return "terms" }
