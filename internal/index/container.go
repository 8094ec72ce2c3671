package index

// NoSymbolsText is shown when an SRFI has no known symbol list.
const NoSymbolsText = "(No symbols found)"

// ErrorClass marks fallback list items.
const ErrorClass = "error"

// Container is the mutable table a render cycle populates.
// The zero value is an empty table ready for use.
type Container struct {
	rows []Row
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Cell is a table cell. Exactly one of Text, Link or List is set.
type Cell struct {
	Header  bool
	ColSpan int
	Text    string
	Link    *Link
	List    *List
}

// Link is a hyperlink.
type Link struct {
	Href string
	Text string
}

// List is an unordered list.
type List struct {
	Items []ListItem
}

// ListItem is a list entry. Code items wrap Text in inline code.
type ListItem struct {
	Text  string
	Code  bool
	Class string
}

// Clear removes every row.
func (c *Container) Clear() {
	c.rows = nil
}

// Append adds a row at the end.
func (c *Container) Append(r Row) {
	c.rows = append(c.rows, r)
}

// Rows returns the current rows.
func (c *Container) Rows() []Row {
	return c.rows
}

// Empty reports whether the container holds no rows.
func (c *Container) Empty() bool {
	return len(c.rows) == 0
}
