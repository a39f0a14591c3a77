package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Index   int
	Results int
	Page    int
	Text    string
}

// Cursor returns the selected result index
func (c ModelContext) Cursor() int {
	return c.Index
}

// ResultCount returns how many results are listed
func (c ModelContext) ResultCount() int {
	return c.Results
}

// PageSize returns the number of result rows on screen
func (c ModelContext) PageSize() int {
	return c.Page
}

// Query returns the text in the search box
func (c ModelContext) Query() string {
	return c.Text
}
