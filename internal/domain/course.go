package domain

import "time"

// Course is a published language course shown on the marketing site.
type Course struct {
	ID          string
	Nombre      string
	Descripcion string
	Nivel       string
	Precio      float64
	Activo      bool
	CreatedAt   time.Time
}

// Lesson is a single video lesson inside a course.
type Lesson struct {
	ID       string
	CourseID string
	Titulo   string
	VideoURL string
	Posicion int
}
