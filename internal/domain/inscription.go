package domain

import "time"

// InscriptionStatus represents lifecycle states for an enrollment.
type InscriptionStatus string

const (
	InscriptionStatusActive    InscriptionStatus = "ACTIVA"
	InscriptionStatusCompleted InscriptionStatus = "COMPLETADA"
	InscriptionStatusCancelled InscriptionStatus = "CANCELADA"
)

// Inscription links a student to a course. It is the resource a
// receipt-access token grants visibility into.
type Inscription struct {
	ID         string
	UserID     string
	CourseID   string
	CursoName  string
	Status     InscriptionStatus
	MontoTotal float64
	CreatedAt  time.Time
}

// Payment records a single payment against an inscription.
type Payment struct {
	ID            string
	InscriptionID string
	Monto         float64
	Metodo        string
	Concepto      string
	PagadoAt      time.Time
}
