package notes

import "time"

// Note es una nota libre asociada a (user, pet). Date es la fecha de creación
// y no cambia al editar.
type Note struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}
