package dto

import (
	"time"

	"github.com/hablalab/academy-service/internal/domain"
)

// CursoResponse is the wire form of a course.
type CursoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Nivel       string  `json:"nivel"`
	Precio      float64 `json:"precio"`
}

// LeccionResponse is the wire form of a video lesson.
type LeccionResponse struct {
	ID       string `json:"id"`
	Titulo   string `json:"titulo"`
	VideoURL string `json:"video_url"`
	Posicion int    `json:"posicion"`
}

// InscripcionResponse is the wire form of an enrollment.
type InscripcionResponse struct {
	ID         string                   `json:"id"`
	CursoID    string                   `json:"curso_id"`
	Curso      string                   `json:"curso"`
	Estado     domain.InscriptionStatus `json:"estado"`
	MontoTotal float64                  `json:"monto_total"`
	CreatedAt  time.Time                `json:"created_at"`
}

// PagoResponse is the wire form of a payment.
type PagoResponse struct {
	ID            string    `json:"id"`
	InscripcionID string    `json:"inscripcion_id"`
	Monto         float64   `json:"monto"`
	Metodo        string    `json:"metodo"`
	Concepto      string    `json:"concepto,omitempty"`
	PagadoAt      time.Time `json:"pagado_at"`
}

// CursosFromDomain maps courses to their wire form.
func CursosFromDomain(courses []domain.Course) []CursoResponse {
	out := make([]CursoResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, CursoResponse{
			ID:          c.ID,
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
			Nivel:       c.Nivel,
			Precio:      c.Precio,
		})
	}
	return out
}

// LeccionesFromDomain maps lessons to their wire form.
func LeccionesFromDomain(lessons []domain.Lesson) []LeccionResponse {
	out := make([]LeccionResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, LeccionResponse{
			ID:       l.ID,
			Titulo:   l.Titulo,
			VideoURL: l.VideoURL,
			Posicion: l.Posicion,
		})
	}
	return out
}

// InscripcionesFromDomain maps enrollments to their wire form.
func InscripcionesFromDomain(inscriptions []domain.Inscription) []InscripcionResponse {
	out := make([]InscripcionResponse, 0, len(inscriptions))
	for _, i := range inscriptions {
		out = append(out, InscripcionFromDomain(&i))
	}
	return out
}

// InscripcionFromDomain maps one enrollment to its wire form.
func InscripcionFromDomain(insc *domain.Inscription) InscripcionResponse {
	return InscripcionResponse{
		ID:         insc.ID,
		CursoID:    insc.CourseID,
		Curso:      insc.CursoName,
		Estado:     insc.Status,
		MontoTotal: insc.MontoTotal,
		CreatedAt:  insc.CreatedAt,
	}
}

// PagosFromDomain maps payments to their wire form.
func PagosFromDomain(payments []domain.Payment) []PagoResponse {
	out := make([]PagoResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PagoResponse{
			ID:            p.ID,
			InscripcionID: p.InscriptionID,
			Monto:         p.Monto,
			Metodo:        p.Metodo,
			Concepto:      p.Concepto,
			PagadoAt:      p.PagadoAt,
		})
	}
	return out
}
