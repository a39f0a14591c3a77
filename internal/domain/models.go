package domain

// Item represents a product in the catalog
type Item struct {
	Name     string   `toml:"name"`
	Category string   `toml:"category"`
	Price    float64  `toml:"price"`
	Tags     []string `toml:"tags,omitempty"`
}

// HistoryEntry is a query that previously returned results
type HistoryEntry struct {
	Query   string `toml:"query"`
	Results int    `toml:"results"`
}
