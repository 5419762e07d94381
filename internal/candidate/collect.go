package candidate

// FirstMissing scans the collection order and returns the first field that is
// absent or blank. It returns false when every field is filled.
func FirstMissing(c *Candidate) (Field, bool) {
	for _, step := range collectionOrder {
		if _, ok := c.Get(step.Field); !ok {
			return step.Field, true
		}
	}
	return "", false
}

// Complete reports whether every required field is filled.
func Complete(c *Candidate) bool {
	_, missing := FirstMissing(c)
	return !missing
}

// Advance validates the raw input for the field and stores it on success.
// On failure the candidate is left untouched and a *ValidationError is returned.
func Advance(c *Candidate, field Field, raw string) (Value, error) {
	value, err := Validate(field, raw)
	if err != nil {
		return Value{}, err
	}

	c.Set(value)
	return value, nil
}
