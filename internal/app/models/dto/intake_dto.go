package dto

import (
	"time"

	"github.com/appderecho/backend/internal/app/models"
)

// IntakeRecordRequest carries the editable fields of an intake form. It is
// used both for creation and full update.
type IntakeRecordRequest struct {
	// I. General information
	City           string  `json:"ciudad"`
	DateDay        int     `json:"fecha_dia" binding:"required,min=1,max=31"`
	DateMonth      int     `json:"fecha_mes" binding:"required,min=1,max=12"`
	DateYear       int     `json:"fecha_ano" binding:"required,min=2000"`
	InstructorName *string `json:"nombre_docente_responsable,omitempty"`
	StudentName    string  `json:"nombre_estudiante"`
	Area           *string `json:"area_consulta,omitempty"`

	// II. Consultant information
	ReferredBy     *string `json:"remitido_por,omitempty"`
	Email          *string `json:"correo_electronico,omitempty"`
	ConsultantName string  `json:"nombre_consultante" binding:"required"`
	Age            *int    `json:"edad,omitempty"`
	BirthDay       *int    `json:"fecha_nacimiento_dia,omitempty"`
	BirthMonth     *int    `json:"fecha_nacimiento_mes,omitempty"`
	BirthYear      *int    `json:"fecha_nacimiento_ano,omitempty"`
	Birthplace     *string `json:"lugar_nacimiento,omitempty"`
	Sex            string  `json:"sexo"`
	DocumentType   string  `json:"tipo_documento"`
	DocumentNumber string  `json:"numero_documento" binding:"required"`
	IssuePlace     *string `json:"lugar_expedicion,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	Neighborhood   *string `json:"barrio,omitempty"`
	Stratum        *int    `json:"estrato,omitempty"`
	Phone          *string `json:"numero_telefonico,omitempty"`
	Mobile         *string `json:"numero_celular,omitempty"`
	MaritalStatus  *string `json:"estado_civil,omitempty"`
	EducationLevel *string `json:"escolaridad,omitempty"`
	Occupation     *string `json:"profesion_oficio,omitempty"`

	// III - V. Narrative sections
	CaseDescription *string `json:"descripcion_caso,omitempty"`
	StudentOpinion  *string `json:"concepto_estudiante,omitempty"`
	AdvisorOpinion  *string `json:"concepto_asesor,omitempty"`
}

// UpdateIntakeRecordRequest carries a partial update of an intake record.
// Omitted fields are left unchanged.
type UpdateIntakeRecordRequest struct {
	City           *string `json:"ciudad,omitempty"`
	DateDay        *int    `json:"fecha_dia,omitempty" binding:"omitempty,min=1,max=31"`
	DateMonth      *int    `json:"fecha_mes,omitempty" binding:"omitempty,min=1,max=12"`
	DateYear       *int    `json:"fecha_ano,omitempty" binding:"omitempty,min=2000"`
	InstructorName *string `json:"nombre_docente_responsable,omitempty"`
	StudentName    *string `json:"nombre_estudiante,omitempty"`
	Area           *string `json:"area_consulta,omitempty"`

	ReferredBy     *string `json:"remitido_por,omitempty"`
	Email          *string `json:"correo_electronico,omitempty"`
	ConsultantName *string `json:"nombre_consultante,omitempty"`
	Age            *int    `json:"edad,omitempty"`
	BirthDay       *int    `json:"fecha_nacimiento_dia,omitempty"`
	BirthMonth     *int    `json:"fecha_nacimiento_mes,omitempty"`
	BirthYear      *int    `json:"fecha_nacimiento_ano,omitempty"`
	Birthplace     *string `json:"lugar_nacimiento,omitempty"`
	Sex            *string `json:"sexo,omitempty"`
	DocumentType   *string `json:"tipo_documento,omitempty"`
	DocumentNumber *string `json:"numero_documento,omitempty"`
	IssuePlace     *string `json:"lugar_expedicion,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	Neighborhood   *string `json:"barrio,omitempty"`
	Stratum        *int    `json:"estrato,omitempty"`
	Phone          *string `json:"numero_telefonico,omitempty"`
	Mobile         *string `json:"numero_celular,omitempty"`
	MaritalStatus  *string `json:"estado_civil,omitempty"`
	EducationLevel *string `json:"escolaridad,omitempty"`
	Occupation     *string `json:"profesion_oficio,omitempty"`

	CaseDescription *string `json:"descripcion_caso,omitempty"`
	StudentOpinion  *string `json:"concepto_estudiante,omitempty"`
	AdvisorOpinion  *string `json:"concepto_asesor,omitempty"`
}

// ToPatch converts the request into a model patch.
func (r *UpdateIntakeRecordRequest) ToPatch() *models.IntakeRecordPatch {
	patch := &models.IntakeRecordPatch{
		City:            r.City,
		DateDay:         r.DateDay,
		DateMonth:       r.DateMonth,
		DateYear:        r.DateYear,
		InstructorName:  r.InstructorName,
		StudentName:     r.StudentName,
		Area:            r.Area,
		ReferredBy:      r.ReferredBy,
		Email:           r.Email,
		ConsultantName:  r.ConsultantName,
		Age:             r.Age,
		BirthDay:        r.BirthDay,
		BirthMonth:      r.BirthMonth,
		BirthYear:       r.BirthYear,
		Birthplace:      r.Birthplace,
		DocumentNumber:  r.DocumentNumber,
		IssuePlace:      r.IssuePlace,
		Address:         r.Address,
		Neighborhood:    r.Neighborhood,
		Stratum:         r.Stratum,
		Phone:           r.Phone,
		Mobile:          r.Mobile,
		MaritalStatus:   r.MaritalStatus,
		EducationLevel:  r.EducationLevel,
		Occupation:      r.Occupation,
		CaseDescription: r.CaseDescription,
		StudentOpinion:  r.StudentOpinion,
		AdvisorOpinion:  r.AdvisorOpinion,
	}
	if r.Sex != nil {
		sex := models.Sex(*r.Sex)
		patch.Sex = &sex
	}
	if r.DocumentType != nil {
		docType := models.DocumentType(*r.DocumentType)
		patch.DocumentType = &docType
	}
	return patch
}

// IntakeRecordResponse is the public shape of an intake record.
type IntakeRecordResponse struct {
	ID             int64   `json:"id"`
	City           string  `json:"ciudad"`
	DateDay        int     `json:"fecha_dia"`
	DateMonth      int     `json:"fecha_mes"`
	DateYear       int     `json:"fecha_ano"`
	InstructorName *string `json:"nombre_docente_responsable,omitempty"`
	StudentName    string  `json:"nombre_estudiante"`
	Area           *string `json:"area_consulta,omitempty"`

	ReferredBy     *string `json:"remitido_por,omitempty"`
	Email          *string `json:"correo_electronico,omitempty"`
	ConsultantName string  `json:"nombre_consultante"`
	Age            *int    `json:"edad,omitempty"`
	BirthDay       *int    `json:"fecha_nacimiento_dia,omitempty"`
	BirthMonth     *int    `json:"fecha_nacimiento_mes,omitempty"`
	BirthYear      *int    `json:"fecha_nacimiento_ano,omitempty"`
	Birthplace     *string `json:"lugar_nacimiento,omitempty"`
	Sex            string  `json:"sexo"`
	DocumentType   string  `json:"tipo_documento"`
	DocumentNumber string  `json:"numero_documento"`
	IssuePlace     *string `json:"lugar_expedicion,omitempty"`
	Address        *string `json:"direccion,omitempty"`
	Neighborhood   *string `json:"barrio,omitempty"`
	Stratum        *int    `json:"estrato,omitempty"`
	Phone          *string `json:"numero_telefonico,omitempty"`
	Mobile         *string `json:"numero_celular,omitempty"`
	MaritalStatus  *string `json:"estado_civil,omitempty"`
	EducationLevel *string `json:"escolaridad,omitempty"`
	Occupation     *string `json:"profesion_oficio,omitempty"`

	CaseDescription *string `json:"descripcion_caso,omitempty"`
	StudentOpinion  *string `json:"concepto_estudiante,omitempty"`
	AdvisorOpinion  *string `json:"concepto_asesor,omitempty"`

	IsActive  bool      `json:"activo"`
	CreatedBy int64     `json:"created_by_id"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// IntakeRecordListResponse wraps an intake listing with its total count.
type IntakeRecordListResponse struct {
	Records []IntakeRecordResponse `json:"controles"`
	Total   int                    `json:"total"`
}

// ToModel converts the request into an intake record model. The control
// fields (id, creator, timestamps, active flag) are left for the service.
func (r *IntakeRecordRequest) ToModel() *models.IntakeRecord {
	city := r.City
	if city == "" {
		city = models.DefaultCity
	}
	return &models.IntakeRecord{
		City:            city,
		DateDay:         r.DateDay,
		DateMonth:       r.DateMonth,
		DateYear:        r.DateYear,
		InstructorName:  r.InstructorName,
		StudentName:     r.StudentName,
		Area:            r.Area,
		ReferredBy:      r.ReferredBy,
		Email:           r.Email,
		ConsultantName:  r.ConsultantName,
		Age:             r.Age,
		BirthDay:        r.BirthDay,
		BirthMonth:      r.BirthMonth,
		BirthYear:       r.BirthYear,
		Birthplace:      r.Birthplace,
		Sex:             models.Sex(r.Sex),
		DocumentType:    models.DocumentType(r.DocumentType),
		DocumentNumber:  r.DocumentNumber,
		IssuePlace:      r.IssuePlace,
		Address:         r.Address,
		Neighborhood:    r.Neighborhood,
		Stratum:         r.Stratum,
		Phone:           r.Phone,
		Mobile:          r.Mobile,
		MaritalStatus:   r.MaritalStatus,
		EducationLevel:  r.EducationLevel,
		Occupation:      r.Occupation,
		CaseDescription: r.CaseDescription,
		StudentOpinion:  r.StudentOpinion,
		AdvisorOpinion:  r.AdvisorOpinion,
	}
}

// MapIntakeRecordToResponse converts an intake record into its API representation
func MapIntakeRecordToResponse(rec *models.IntakeRecord) IntakeRecordResponse {
	return IntakeRecordResponse{
		ID:              rec.ID,
		City:            rec.City,
		DateDay:         rec.DateDay,
		DateMonth:       rec.DateMonth,
		DateYear:        rec.DateYear,
		InstructorName:  rec.InstructorName,
		StudentName:     rec.StudentName,
		Area:            rec.Area,
		ReferredBy:      rec.ReferredBy,
		Email:           rec.Email,
		ConsultantName:  rec.ConsultantName,
		Age:             rec.Age,
		BirthDay:        rec.BirthDay,
		BirthMonth:      rec.BirthMonth,
		BirthYear:       rec.BirthYear,
		Birthplace:      rec.Birthplace,
		Sex:             string(rec.Sex),
		DocumentType:    string(rec.DocumentType),
		DocumentNumber:  rec.DocumentNumber,
		IssuePlace:      rec.IssuePlace,
		Address:         rec.Address,
		Neighborhood:    rec.Neighborhood,
		Stratum:         rec.Stratum,
		Phone:           rec.Phone,
		Mobile:          rec.Mobile,
		MaritalStatus:   rec.MaritalStatus,
		EducationLevel:  rec.EducationLevel,
		Occupation:      rec.Occupation,
		CaseDescription: rec.CaseDescription,
		StudentOpinion:  rec.StudentOpinion,
		AdvisorOpinion:  rec.AdvisorOpinion,
		IsActive:        rec.IsActive,
		CreatedBy:       rec.CreatedBy,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
