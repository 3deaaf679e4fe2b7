package model

import "time"

// Book represents a physical catalog entry owned by the library.
// Books belong to a category and can be loaned to patrons.  This
// struct corresponds to a row in the `books` table.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – book title.
//  Author       – author name.
//  ISBN         – international standard book number (may be empty
//                 for theses bound as books or donated material).
//  CategoryID   – category the book is filed under (nil when the
//                 record predates the categories table).
//  CategoryName – name of the category, populated by joined list
//                 queries; empty when loaded without the join.
//  Quantity     – number of physical copies owned.
//  Available    – copies currently on the shelf (quantity minus
//                 active loans).
//  CreatedAt    – timestamp when the book was registered.
//  UpdatedAt    – timestamp of last update.
type Book struct {
	ID           uint64    `json:"id"`                      // books.id
	Title        string    `json:"title"`                   // books.title
	Author       string    `json:"author"`                  // books.author
	ISBN         string    `json:"isbn,omitempty"`          // books.isbn
	CategoryID   *uint64   `json:"category_id,omitempty"`   // books.category_id (nullable)
	CategoryName string    `json:"category_name,omitempty"` // categories.name via join
	Quantity     uint32    `json:"quantity"`                // books.quantity
	Available    uint32    `json:"available"`               // books.available
	CreatedAt    time.Time `json:"created_at"`              // books.created_at
	UpdatedAt    time.Time `json:"updated_at"`              // books.updated_at
}

// Category groups books by subject area.  Each category has a
// unique name.  Maps to the `categories` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique category name.
//  CreatedAt – creation timestamp.
type Category struct {
	ID        uint64    `json:"id"`         // categories.id
	Name      string    `json:"name"`       // categories.name
	CreatedAt time.Time `json:"created_at"` // categories.created_at
}

// DigitalBook is an uploaded electronic copy linked to a catalog
// book.  The file itself lives in the file store; only its path is
// recorded.  Maps to the `digital_books` table.
//
// Fields:
//  ID        – primary key identifier.
//  BookID    – catalog book this file belongs to.
//  BookTitle – title of the linked book, populated by joined list
//              queries.
//  FilePath  – location of the stored file relative to the store
//              root.
//  SizeBytes – file size at upload time.
//  CreatedAt – upload timestamp.
type DigitalBook struct {
	ID        uint64    `json:"id"`                   // digital_books.id
	BookID    uint64    `json:"book_id"`              // digital_books.book_id
	BookTitle string    `json:"book_title,omitempty"` // books.title via join
	FilePath  string    `json:"file_path"`            // digital_books.file_path
	SizeBytes int64     `json:"size_bytes"`           // digital_books.size_bytes
	CreatedAt time.Time `json:"created_at"`           // digital_books.created_at
}
