// Package seed holds the demo data served when the live database is empty
// or unreachable.  The catalog fetchers substitute these records so the UI
// always has something to render.  The seed slices are never handed out
// directly: every accessor returns a fresh copy so callers cannot mutate
// the shared data.
package seed

import (
	"time"

	"github.com/utmbiblio/library-service/internal/model"
)

var seedTime = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

var categories = []model.Category{
	{ID: 1, Name: "Computación", CreatedAt: seedTime},
	{ID: 2, Name: "Matemáticas", CreatedAt: seedTime},
	{ID: 3, Name: "Electrónica", CreatedAt: seedTime},
	{ID: 4, Name: "Diseño", CreatedAt: seedTime},
}

var books = []model.Book{
	{ID: 1, Title: "Introducción a los Algoritmos", Author: "T. Cormen", ISBN: "9780262033848", CategoryID: ptr(uint64(1)), CategoryName: "Computación", Quantity: 3, Available: 2, CreatedAt: seedTime},
	{ID: 2, Title: "Cálculo de Varias Variables", Author: "J. Stewart", ISBN: "9786075228280", CategoryID: ptr(uint64(2)), CategoryName: "Matemáticas", Quantity: 5, Available: 5, CreatedAt: seedTime},
	{ID: 3, Title: "Sistemas Digitales", Author: "R. Tocci", ISBN: "9786073240031", CategoryID: ptr(uint64(3)), CategoryName: "Electrónica", Quantity: 2, Available: 1, CreatedAt: seedTime},
	{ID: 4, Title: "El Lenguaje de Programación Go", Author: "A. Donovan", ISBN: "9780134190440", CategoryID: ptr(uint64(1)), CategoryName: "Computación", Quantity: 1, Available: 1, CreatedAt: seedTime},
}

// Thesis demo identifiers deliberately do not look like UUIDs: the delete
// path uses the identifier shape to tell seed records from persisted rows.
var theses = []model.Thesis{
	{
		ID: "demo-tesis-1", Title: "Clasificación de textos en mixteco con redes neuronales",
		Author: "María Hernández Cruz", Career: "Ingeniería en Computación", Year: 2023,
		Director: "Dr. J. Ramírez", Degree: model.DegreeLicenciatura, Available: true, CreatedAt: seedTime,
	},
	{
		ID: "demo-tesis-2", Title: "Optimización de rutas de transporte en la región mixteca",
		Author: "Luis Ortiz Pérez", Career: "Matemáticas Aplicadas", Year: 2022,
		Director: "Dra. A. Velasco", Degree: model.DegreeMaestria, Available: true,
		Summary: "Modelos de optimización combinatoria aplicados al transporte regional.", CreatedAt: seedTime,
	},
	{
		ID: "demo-tesis-3", Title: "Sensores de bajo costo para monitoreo de cultivos",
		Author: "Ana Torres Gil", Career: "Ingeniería en Electrónica", Year: 2021,
		Director: "Dr. M. Santos", Degree: model.DegreeDoctorado, Available: false, CreatedAt: seedTime,
	},
}

var loans = []model.Loan{
	{ID: 1, BookID: 1, BookTitle: "Introducción a los Algoritmos", UserID: 1, UserEmail: "alumno1@mixteco.utm.mx", Status: model.LoanActive, LoanedAt: seedTime, DueAt: seedTime.AddDate(0, 0, 14)},
	{ID: 2, BookID: 3, BookTitle: "Sistemas Digitales", UserID: 2, UserEmail: "alumno2@mixteco.utm.mx", Status: model.LoanReturned, LoanedAt: seedTime.AddDate(0, -1, 0), DueAt: seedTime.AddDate(0, -1, 14), ReturnedAt: ptr(seedTime.AddDate(0, -1, 10))},
}

// Books returns a defensive copy of the seed books in definition order.
func Books() []model.Book {
	out := make([]model.Book, len(books))
	copy(out, books)
	return out
}

// Categories returns a defensive copy of the seed categories.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

// Theses returns a defensive copy of the seed theses.
func Theses() []model.Thesis {
	out := make([]model.Thesis, len(theses))
	copy(out, theses)
	return out
}

// Loans returns a defensive copy of the seed loans.
func Loans() []model.Loan {
	out := make([]model.Loan, len(loans))
	copy(out, loans)
	return out
}

func ptr[T any](v T) *T { return &v }
