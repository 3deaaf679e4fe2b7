package model

import "time"

// Degree levels stored in the theses.degree column.  The values
// mirror the academic programmes the library archives: licenciatura
// (undergraduate), maestría and doctorado.
const (
	DegreeLicenciatura = "LICENCIATURA"
	DegreeMaestria     = "MAESTRIA"
	DegreeDoctorado    = "DOCTORADO"
)

// Thesis is an archived academic thesis.  Records persisted in the
// database carry a canonical UUID as identifier; demo records served
// from the seed store use short human-readable identifiers instead,
// and that distinction drives the delete path (see catalog.Service).
// Maps to the `theses` table.
//
// Fields:
//  ID        – UUID string for persisted rows, or a non-UUID demo
//              identifier for seed records.
//  Title     – thesis title.
//  Author    – student who wrote the thesis.
//  Career    – academic programme (e.g. "Ingeniería en Computación").
//  Year      – year of defence; 0 when unknown.
//  Director  – supervising professor.
//  Summary   – optional abstract.
//  Degree    – one of the Degree* constants.
//  Available – whether the bound copy can be consulted; defaults to
//              true unless the backend explicitly stores false.
//  FileRef   – optional reference to the stored PDF, empty when no
//              digital copy exists.
//  CreatedAt – timestamp when the record was archived.
type Thesis struct {
	ID        string    `json:"id"`                 // theses.id (UUID) or demo identifier
	Title     string    `json:"title"`              // theses.title
	Author    string    `json:"author"`             // theses.author
	Career    string    `json:"career"`             // theses.career
	Year      int       `json:"year"`               // theses.anio
	Director  string    `json:"director"`           // theses.director
	Summary   string    `json:"summary,omitempty"`  // theses.summary (nullable, empty when absent)
	Degree    string    `json:"degree"`             // theses.tipo
	Available bool      `json:"available"`          // theses.disponible
	FileRef   string    `json:"file_ref,omitempty"` // theses.archivo_pdf (nullable, empty when absent)
	CreatedAt time.Time `json:"created_at"`         // theses.created_at
}
