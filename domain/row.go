package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OptionalNumber decodes a JSON number or a numeric string. Anything else
// (null, empty string, text) leaves it unset instead of failing the decode,
// so one bad cell never rejects the whole table.
type OptionalNumber struct {
	Value float64
	Valid bool
}

func Number(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Valid: true}
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	*n = OptionalNumber{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = OptionalNumber{Value: v, Valid: true}
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// CourseRow is a course table row as submitted, before filtering.
type CourseRow struct {
	Name    string         `json:"name"`
	Grade   OptionalNumber `json:"gradeValue"`
	Credits OptionalNumber `json:"credits"`
}
