// Package pdf renders intake records as the official two-page intake form of
// the legal clinic.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/appderecho/backend/internal/app/models"
)

// Page geometry in inches.
const (
	marginLeft   = 0.75
	marginRight  = 0.75
	marginTop    = 0.4
	marginBottom = 0.75
	pageWidth    = 8.5
	contentWidth = pageWidth - marginLeft - marginRight
)

// Fixed heights of the free-text boxes.
const (
	caseBoxHeight        = 2.5
	studentBoxHeight     = 2.2
	advisorBoxHeight     = 2.5
	declarationBoxHeight = 3.8
)

const footerText = "Calle 5C No. 94I – 25 Edificio Nuevo Piso 4 – UPK - Bogotá, D.C.    Correo: consultoriojuridico.kennedy@unicolmayor.edu.co"

var declarationClauses = []string{
	"Que la información antes suministrada se puede verificar y si se comprueba que falté a la verdad y omití información, acepto el archivo y renuncia del caso por parte del CONSULTORIO JURÍDICO de la UNIVERSIDAD COLEGIO MAYOR DE CUNDINAMARCA.",
	"Que fui informado, que el compromiso profesional se inicia con previa aceptación del caso y la entrevista sin compromiso a la UNIVERSIDAD COLEGIO (CONSULTORIO JURÍDICO), ni a ninguno de los profesionales que allí labora a brindar asesoría del caso.",
	"Autorizo que en caso de no aportar los documentos requeridos en un término prudencial o de incumplir en por lo menos a dos citas, o comete alguna falta de personal que me atiende será ARCHIVADO.",
	"Igualmente autorizo a la UNIVERSIDAD COLEGIO MAYOR DE CUNDINAMARCA (CONSULTORIO JURÍDICO), para utilizar la información confidencial suministrada y requerida, con académicos e investigativos.",
	"Manifiesto que fui informado en el CONSULTORIO JURÍDICO de la UNIVERSIDAD COLEGIO MAYOR DE CUNDINAMARCA de la existencia de un equipo interdisciplinario que permite ofrecer una atención integral a los usuarios con el fin de mejorar la calidad de vida a nivel individual y/o familiar mediante un seguimiento de los casos requeridos.",
}

// FileName builds the download name of an intake form PDF.
func FileName(recordID int64, now time.Time) string {
	return fmt.Sprintf("control_operativo_%d_%s.pdf", recordID, now.Format("20060102"))
}

// Generator renders intake records as PDF documents.
type Generator struct {
	logoPath string
}

// NewGenerator creates an intake form generator. logoPath points to the
// university shield image and may be empty, the header then renders text
// only.
func NewGenerator(logoPath string) *Generator {
	return &Generator{logoPath: logoPath}
}

type form struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	logoPath string
}

// Generate renders the record as a PDF and returns the document bytes.
func (g *Generator) Generate(rec *models.IntakeRecord) ([]byte, error) {
	doc := fpdf.New("P", "in", "Letter", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.AddPage()

	f := &form{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), logoPath: g.logoPath}

	f.header()
	f.generalSection(rec)
	f.consultantSection(rec)
	f.textSection("III.  BREVE DESCRIPCIÓN DEL CASO", deref(rec.CaseDescription), caseBoxHeight)
	f.textSection("IV.  CONCEPTO DEL ESTUDIANTE", deref(rec.StudentOpinion), studentBoxHeight)
	f.signatureRow("Firma Estudiante:")
	f.pdf.Ln(0.12)
	f.textSection("V.  CONCEPTO DEL ASESOR JURÍDICO", deref(rec.AdvisorOpinion), advisorBoxHeight)
	f.signatureRow("Firma Asesor:")

	// The declaration always starts its own page.
	doc.AddPage()
	f.declarationSection()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering intake form: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *form) header() {
	p := f.pdf
	if f.logoPath != "" {
		if _, err := os.Stat(f.logoPath); err == nil {
			x := marginLeft + (contentWidth-1)/2
			p.ImageOptions(f.logoPath, x, p.GetY(), 1, 1, false,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
			p.SetY(p.GetY() + 1.05)
		}
	}
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(contentWidth, 0.18, f.tr("UNIVERSIDAD COLEGIO MAYOR DE CUNDINAMARCA"), "", 1, "C", false, 0, "")
	p.CellFormat(contentWidth, 0.18, f.tr("FACULTAD DE DERECHO - CONSULTORIO JURÍDICO"), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	p.CellFormat(contentWidth, 0.16, f.tr("Sede Universidad Pública de Kennedy - Tintal"), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "I", 7)
	p.CellFormat(contentWidth, 0.14, f.tr("Aprobado Acuerdo 10/28/2002 Sala de Gobierno RTSJ50 de Bogotá"), "", 1, "C", false, 0, "")
	p.Ln(0.1)
	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(contentWidth, 0.22, f.tr("CONTROL OPERATIVO DE CONSULTA JURÍDICA"), "", 1, "C", false, 0, "")
	p.Ln(0.1)
}

func (f *form) sectionTitle(title string) {
	p := f.pdf
	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(211, 211, 211)
	p.CellFormat(contentWidth, 0.22, f.tr(title), "1", 1, "L", true, 0, "")
	p.SetFillColor(255, 255, 255)
}

// fieldRow draws one bordered row, splitting contentWidth by the given
// proportions.
func (f *form) fieldRow(proportions []float64, texts []string, h float64) {
	p := f.pdf
	p.SetFont("Helvetica", "", 8)
	for i, prop := range proportions {
		last := i == len(proportions)-1
		ln := 0
		if last {
			ln = 1
		}
		p.CellFormat(contentWidth*prop, h, " "+f.tr(texts[i]), "1", ln, "L", false, 0, "")
	}
}

// checkbox writes a label paired with a checked or empty box. Box glyphs come
// from the ZapfDingbats core font.
func (f *form) checkbox(label string, checked bool, labelFirst bool) {
	p := f.pdf
	glyph := "o"
	if checked {
		glyph = "4"
	}
	if labelFirst {
		p.SetFont("Helvetica", "", 8)
		p.Write(0.18, f.tr(label+" "))
		p.SetFont("ZapfDingbats", "", 8)
		p.Write(0.18, glyph)
	} else {
		p.SetFont("ZapfDingbats", "", 8)
		p.Write(0.18, glyph)
		p.SetFont("Helvetica", "", 8)
		p.Write(0.18, f.tr(" "+label))
	}
}

func (f *form) generalSection(rec *models.IntakeRecord) {
	p := f.pdf
	f.sectionTitle("I.    DATOS DEL USUARIO")

	// City cell spans both rows of the date grid.
	x, y := p.GetXY()
	cityW := contentWidth * 0.538
	dayW := contentWidth * 0.154
	rowH := 0.2

	p.SetFont("Helvetica", "", 8)
	p.Rect(x, y, cityW, rowH*2, "D")
	p.SetXY(x, y)
	p.CellFormat(cityW, rowH*2, " "+f.tr("Ciudad: "+rec.City), "", 0, "L", false, 0, "")

	p.SetXY(x+cityW, y)
	p.CellFormat(dayW, rowH, f.tr("Día"), "1", 0, "C", false, 0, "")
	p.CellFormat(dayW, rowH, "Mes", "1", 0, "C", false, 0, "")
	p.CellFormat(dayW, rowH, f.tr("Año"), "1", 1, "C", false, 0, "")

	p.SetXY(x+cityW, y+rowH)
	p.CellFormat(dayW, rowH, intField(rec.DateDay), "1", 0, "C", false, 0, "")
	p.CellFormat(dayW, rowH, intField(rec.DateMonth), "1", 0, "C", false, 0, "")
	p.CellFormat(dayW, rowH, intField(rec.DateYear), "1", 1, "C", false, 0, "")
	p.SetXY(x, y+rowH*2)

	f.fieldRow([]float64{1}, []string{"Nombre del Docente Responsable: " + deref(rec.InstructorName)}, 0.26)
	f.fieldRow([]float64{1}, []string{"Nombre del Estudiante: " + rec.StudentName}, 0.26)
	f.fieldRow([]float64{1}, []string{"Área de Consulta: " + deref(rec.Area)}, 0.26)
	p.Ln(0.12)
}

func (f *form) consultantSection(rec *models.IntakeRecord) {
	p := f.pdf
	f.sectionTitle("II.   INFORMACIÓN GENERAL DEL CONSULTANTE")

	f.fieldRow([]float64{1}, []string{"Remitido por: " + deref(rec.ReferredBy)}, 0.22)
	f.fieldRow([]float64{1}, []string{"Correo electrónico: " + deref(rec.Email)}, 0.22)

	f.fieldRow([]float64{0.615, 0.385}, []string{
		"1. Nombre: " + rec.ConsultantName,
		"2. Edad: " + intPtrField(rec.Age),
	}, 0.22)

	birth := fmt.Sprintf("3. Fecha de nacimiento    Día: %s    Mes: %s    Año: %s",
		intPtrField(rec.BirthDay), intPtrField(rec.BirthMonth), intPtrField(rec.BirthYear))
	f.fieldRow([]float64{0.462, 0.308, 0.231}, []string{
		birth,
		"4. Lugar de nacimiento: " + deref(rec.Birthplace),
		"5. Sexo",
	}, 0.22)

	// Sex checkboxes share a row with an empty left cell.
	x, y := p.GetXY()
	p.CellFormat(contentWidth*0.692, 0.22, "", "1", 0, "L", false, 0, "")
	p.Rect(x+contentWidth*0.692, y, contentWidth*0.308, 0.22, "D")
	p.SetXY(x+contentWidth*0.692+0.06, y+0.02)
	f.checkbox("Femenino", rec.Sex == models.SexFemale, true)
	p.SetFont("Helvetica", "", 8)
	p.Write(0.18, "   ")
	f.checkbox("Masculino", rec.Sex == models.SexMale, true)
	p.SetXY(x, y+0.22)

	f.fieldRow([]float64{0.5, 0.5}, []string{
		"7. Número de documento: " + rec.DocumentNumber,
		"8. Lugar de expedición: " + deref(rec.IssuePlace),
	}, 0.22)

	// Document type checkboxes.
	x, y = p.GetXY()
	p.Rect(x, y, contentWidth*0.5, 0.22, "D")
	p.CellFormat(contentWidth*0.5, 0.22, "", "", 0, "L", false, 0, "")
	p.CellFormat(contentWidth*0.5, 0.22, "", "1", 1, "L", false, 0, "")
	p.SetXY(x+0.08, y+0.02)
	f.checkbox("T.I.", rec.DocumentType == models.DocTypeTI, false)
	p.Write(0.18, "   ")
	f.checkbox("C.C.", rec.DocumentType == models.DocTypeCC, false)
	p.Write(0.18, "   ")
	f.checkbox("NUIP", rec.DocumentType == models.DocTypeNUIP, false)
	p.SetXY(x, y+0.22)

	f.fieldRow([]float64{0.385, 0.385, 0.231}, []string{
		"9. Dirección: " + deref(rec.Address),
		"10. Barrio: " + deref(rec.Neighborhood),
		"Estrato: " + intPtrField(rec.Stratum),
	}, 0.22)

	f.fieldRow([]float64{0.5, 0.5}, []string{
		"11. Número telefónico: " + deref(rec.Phone),
		"12. Número celular: " + deref(rec.Mobile),
	}, 0.22)

	f.fieldRow([]float64{0.5, 0.5}, []string{
		"13. Estado civil actual: " + deref(rec.MaritalStatus),
		"15. Profesión u oficio: " + deref(rec.Occupation),
	}, 0.22)

	f.fieldRow([]float64{1}, []string{"14. Escolaridad: " + deref(rec.EducationLevel)}, 0.22)
	p.Ln(0.12)
}

// textSection draws a titled fixed-height box with wrapped free text.
func (f *form) textSection(title, text string, h float64) {
	p := f.pdf
	f.sectionTitle(title)

	x, y := p.GetXY()
	p.Rect(x, y, contentWidth, h, "D")
	if text != "" {
		p.SetFont("Helvetica", "", 8)
		p.SetXY(x+0.1, y+0.08)
		p.MultiCell(contentWidth-0.2, 0.14, f.tr(text), "", "L", false)
	}
	p.SetXY(x, y+h)
}

func (f *form) signatureRow(label string) {
	f.fieldRow([]float64{0.769, 0.231}, []string{"", label}, 0.3)
}

func (f *form) declarationSection() {
	p := f.pdf
	f.sectionTitle("VI. DECLARACIÓN DEL USUARIO")

	x, y := p.GetXY()
	p.Rect(x, y, contentWidth, declarationBoxHeight, "D")
	p.SetXY(x+0.1, y+0.1)
	for i, clause := range declarationClauses {
		p.SetX(x + 0.1)
		p.SetFont("Helvetica", "B", 7)
		p.Write(0.13, fmt.Sprintf("%d. ", i+1))
		p.SetFont("Helvetica", "", 7)
		p.Write(0.13, f.tr(clause))
		p.Ln(0.22)
	}
	p.SetXY(x, y+declarationBoxHeight)

	p.Ln(0.33)
	p.SetFont("Helvetica", "", 9)
	lineX := marginLeft + contentWidth*0.615
	p.Line(lineX, p.GetY(), marginLeft+contentWidth, p.GetY())
	p.SetX(lineX)
	p.CellFormat(contentWidth*0.385, 0.25, "Firma del Usuario", "", 1, "C", false, 0, "")

	p.Ln(0.33)
	p.SetFont("Helvetica", "I", 7)
	p.CellFormat(contentWidth, 0.14, f.tr(footerText), "", 1, "C", false, 0, "")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func intPtrField(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
