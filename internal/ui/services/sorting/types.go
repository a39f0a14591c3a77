package sorting

// Mode is the order results are listed in
type Mode int

const (
	ByRelevance Mode = iota // catalog ranking
	ByName
	ByPrice
	ByCategory
)

var modeNames = map[Mode]string{
	ByRelevance: "relevance",
	ByName:      "name",
	ByPrice:     "price",
	ByCategory:  "category",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}
