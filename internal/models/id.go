package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MovieID is a movie id as the API sends it: a JSON number or a JSON string.
// Two ids are equal only when both the kind and the text match, so 550 and
// "550" are different movies.
type MovieID struct {
	value  string
	quoted bool
}

// IntID returns a numeric id.
func IntID(n int64) MovieID {
	return MovieID{value: strconv.FormatInt(n, 10)}
}

// StringID returns a string id.
func StringID(s string) MovieID {
	return MovieID{value: s, quoted: true}
}

// String returns the id text without quotes, as used in URL paths.
func (id MovieID) String() string { return id.value }

// IsZero reports whether the id is absent.
func (id MovieID) IsZero() bool { return id == MovieID{} }

// IsString reports whether the id was a JSON string.
func (id MovieID) IsString() bool { return id.quoted }

// MarshalJSON writes the id back in the kind it was read as.
func (id MovieID) MarshalJSON() ([]byte, error) {
	if id.quoted {
		return json.Marshal(id.value)
	}
	if id.value == "" {
		return []byte("null"), nil
	}
	return []byte(id.value), nil
}

// UnmarshalJSON accepts a number, a string or null.
func (id *MovieID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = MovieID{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("movie id must be a number or a string, got %s", data)
	}
	*id = MovieID{value: canonicalNumber(n)}
	return nil
}

// canonicalNumber writes integral values without fraction or exponent so
// 550, 550.0 and 5.5e2 compare equal.
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
