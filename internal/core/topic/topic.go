package topic

// Topic is a named discussion category. Topics are seeded reference data and
// are read-only through the API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
