package model

// CatalogEntry is a flattened, printable view of one catalog check.
type CatalogEntry struct {
	Category string
	Check    string
	Probe    string
	Target   string
}
