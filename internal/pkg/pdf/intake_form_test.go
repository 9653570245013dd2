package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appderecho/backend/internal/app/models"
)

func TestGenerateEmptyRecord(t *testing.T) {
	g := NewGenerator("")

	// A record with every optional field nil must still render.
	data, err := g.Generate(&models.IntakeRecord{})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF")
}

func TestGenerateFullRecord(t *testing.T) {
	g := NewGenerator("")

	instructor := "Dr. Martínez"
	area := "Derecho de Familia"
	description := "El consultante solicita asesoría sobre un proceso de custodia."
	age := 34
	rec := &models.IntakeRecord{
		ID:              7,
		City:            models.DefaultCity,
		DateDay:         15,
		DateMonth:       3,
		DateYear:        2024,
		InstructorName:  &instructor,
		StudentName:     "Laura Gómez",
		Area:            &area,
		ConsultantName:  "Pedro Pérez",
		Age:             &age,
		Sex:             models.SexMale,
		DocumentType:    models.DocTypeCC,
		DocumentNumber:  "80123456",
		CaseDescription: &description,
	}

	data, err := g.Generate(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	empty, err := g.Generate(&models.IntakeRecord{})
	require.NoError(t, err)
	assert.Greater(t, len(data), len(empty), "filled form should carry more content")
}

func TestGenerateMissingLogoFallsBack(t *testing.T) {
	g := NewGenerator("does/not/exist.png")

	data, err := g.Generate(&models.IntakeRecord{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "control_operativo_7_20240315.pdf", FileName(7, now))
}
