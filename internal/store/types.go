package store

// Catalog is the row-level content of one catalog file.
type Catalog struct {
	ID       string // UUID text, empty when the title should derive it
	Title    string
	Meters   []string
	Entities []EntityRow
	Events   []EventRow
}

// EntityRow is one row of the entities table.
type EntityRow struct {
	ID         uint32
	Kind       string
	Value      string
	Start      string
	End        string
	Performer  string
	Instrument string
	Voice      int
}

// EventRow is an event with its members in position order.
type EventRow struct {
	ID      uint32
	Members []uint32
}
