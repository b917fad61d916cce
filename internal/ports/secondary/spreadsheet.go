package secondary

// SpreadsheetReader loads a tabular file into a rectangular cell matrix
// (first row = header). Raw file I/O stays behind this port so ingestion
// logic can be tested on literal tables.
type SpreadsheetReader interface {
	Read(path string) ([][]string, error)
}
