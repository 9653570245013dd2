package models

import "time"

// Sex is the consultant sex field rendered as a checkbox pair on the form.
// Values match the strings stored by the existing frontend.
type Sex string

const (
	SexFemale      Sex = "Femenino"
	SexMale        Sex = "Masculino"
	SexUnspecified Sex = ""
)

// DocumentType is the consultant identity-document kind, a tri-state checkbox
// set on the form.
type DocumentType string

const (
	DocTypeTI          DocumentType = "T.I."
	DocTypeCC          DocumentType = "C.C."
	DocTypeNUIP        DocumentType = "NUIP"
	DocTypeUnspecified DocumentType = ""
)

// IntakeRecord is an operational-control record for a legal consultation.
// Field groups follow the sections of the institutional paper form.
type IntakeRecord struct {
	ID int64

	// I. User data
	City           string
	DateDay        int
	DateMonth      int
	DateYear       int
	InstructorName *string
	StudentName    string
	Area           *string

	// II. Consultant information
	ReferredBy      *string
	Email           *string
	ConsultantName  string
	Age             *int
	BirthDay        *int
	BirthMonth      *int
	BirthYear       *int
	Birthplace      *string
	Sex             Sex
	DocumentType    DocumentType
	DocumentNumber  string
	IssuePlace      *string
	Address         *string
	Neighborhood    *string
	Stratum         *int
	Phone           *string
	Mobile          *string
	MaritalStatus   *string
	EducationLevel  *string
	Occupation      *string

	// III-V. Free text sections
	CaseDescription *string
	StudentOpinion  *string
	AdvisorOpinion  *string

	// Control fields. CreatedBy never changes after creation.
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy int64
}

// DefaultCity is the preprinted city on the institutional form
const DefaultCity = "Bogotá D.C"

// IntakeRecordPatch carries a partial update of an intake record. Nil fields
// are left unchanged.
type IntakeRecordPatch struct {
	City           *string
	DateDay        *int
	DateMonth      *int
	DateYear       *int
	InstructorName *string
	StudentName    *string
	Area           *string

	ReferredBy     *string
	Email          *string
	ConsultantName *string
	Age            *int
	BirthDay       *int
	BirthMonth     *int
	BirthYear      *int
	Birthplace     *string
	Sex            *Sex
	DocumentType   *DocumentType
	DocumentNumber *string
	IssuePlace     *string
	Address        *string
	Neighborhood   *string
	Stratum        *int
	Phone          *string
	Mobile         *string
	MaritalStatus  *string
	EducationLevel *string
	Occupation     *string

	CaseDescription *string
	StudentOpinion  *string
	AdvisorOpinion  *string
}

// Apply copies every supplied field of the patch onto the record.
func (p *IntakeRecordPatch) Apply(rec *IntakeRecord) {
	if p.City != nil {
		rec.City = *p.City
	}
	if p.DateDay != nil {
		rec.DateDay = *p.DateDay
	}
	if p.DateMonth != nil {
		rec.DateMonth = *p.DateMonth
	}
	if p.DateYear != nil {
		rec.DateYear = *p.DateYear
	}
	if p.InstructorName != nil {
		rec.InstructorName = p.InstructorName
	}
	if p.StudentName != nil {
		rec.StudentName = *p.StudentName
	}
	if p.Area != nil {
		rec.Area = p.Area
	}
	if p.ReferredBy != nil {
		rec.ReferredBy = p.ReferredBy
	}
	if p.Email != nil {
		rec.Email = p.Email
	}
	if p.ConsultantName != nil {
		rec.ConsultantName = *p.ConsultantName
	}
	if p.Age != nil {
		rec.Age = p.Age
	}
	if p.BirthDay != nil {
		rec.BirthDay = p.BirthDay
	}
	if p.BirthMonth != nil {
		rec.BirthMonth = p.BirthMonth
	}
	if p.BirthYear != nil {
		rec.BirthYear = p.BirthYear
	}
	if p.Birthplace != nil {
		rec.Birthplace = p.Birthplace
	}
	if p.Sex != nil {
		rec.Sex = *p.Sex
	}
	if p.DocumentType != nil {
		rec.DocumentType = *p.DocumentType
	}
	if p.DocumentNumber != nil {
		rec.DocumentNumber = *p.DocumentNumber
	}
	if p.IssuePlace != nil {
		rec.IssuePlace = p.IssuePlace
	}
	if p.Address != nil {
		rec.Address = p.Address
	}
	if p.Neighborhood != nil {
		rec.Neighborhood = p.Neighborhood
	}
	if p.Stratum != nil {
		rec.Stratum = p.Stratum
	}
	if p.Phone != nil {
		rec.Phone = p.Phone
	}
	if p.Mobile != nil {
		rec.Mobile = p.Mobile
	}
	if p.MaritalStatus != nil {
		rec.MaritalStatus = p.MaritalStatus
	}
	if p.EducationLevel != nil {
		rec.EducationLevel = p.EducationLevel
	}
	if p.Occupation != nil {
		rec.Occupation = p.Occupation
	}
	if p.CaseDescription != nil {
		rec.CaseDescription = p.CaseDescription
	}
	if p.StudentOpinion != nil {
		rec.StudentOpinion = p.StudentOpinion
	}
	if p.AdvisorOpinion != nil {
		rec.AdvisorOpinion = p.AdvisorOpinion
	}
}
