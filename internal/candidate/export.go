package candidate

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
)

// Snapshot returns the candidate as a flat key/value map keyed by field name.
// Missing fields are present with a nil value.
func Snapshot(c *Candidate) (map[string]any, error) {
	if c == nil {
		c = New()
	}

	var raw map[string]any
	if err := mapstructure.Decode(*c, &raw); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}

	out := make(map[string]any, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case *string:
			if v == nil {
				out[key] = nil
				continue
			}
			out[key] = *v
		case *float64:
			if v == nil {
				out[key] = nil
				continue
			}
			out[key] = *v
		default:
			out[key] = v
		}
	}

	return out, nil
}

// WriteCSV writes a header row with the field keys in collection order followed
// by a single row with the candidate's values.
func WriteCSV(w io.Writer, c *Candidate) error {
	header := make([]string, 0, len(collectionOrder))
	row := make([]string, 0, len(collectionOrder))
	for _, step := range collectionOrder {
		header = append(header, step.Field.String())
		value, _ := c.Get(step.Field)
		row = append(row, value)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll([][]string{header, row}); err != nil {
		return fmt.Errorf("write candidate csv: %w", err)
	}

	return nil
}
