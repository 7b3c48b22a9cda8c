package facts

import (
	"encoding/json"
	"math"

	"github.com/rshade/factsview/internal/pagination"
)

// Name is a record author's name.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// User is the author of a record.
type User struct {
	Name Name `json:"name"`
}

// Record is a single list item.
type Record struct {
	Text    string `json:"text"`
	User    User   `json:"user"`
	Upvotes int    `json:"upvotes"`
}

// UnmarshalJSON accepts upvotes in any JSON number form ("12", "12.0", "1e3")
// and rounds it to the nearest integer.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var raw struct {
		plain

		Upvotes float64 `json:"upvotes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record(raw.plain)
	r.Upvotes = int(math.Round(raw.Upvotes))
	return nil
}

// AuthorName returns the author's first and last name joined by a space.
func (r Record) AuthorName() string {
	return r.User.Name.First + " " + r.User.Name.Last
}

// Page is one decoded response from the records endpoint.
type Page struct {
	Records    []Record        `json:"records"`
	Pagination pagination.Info `json:"_pagination"`
}

// Query selects a page of records.
type Query struct {
	Page    int
	PerPage int
	Text    string
}
