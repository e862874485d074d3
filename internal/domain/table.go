package domain

// Table is a statistics table: a header row plus string cells, written
// without a row index.
type Table struct {
	Header []string
	Rows   [][]string
}
