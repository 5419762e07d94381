package candidate

import (
	"errors"
	"testing"
)

func filled() *Candidate {
	c := New()
	for _, step := range CollectionOrder() {
		raw := "value"
		switch step.Field {
		case Email:
			raw = "jane@example.com"
		case Phone:
			raw = "+1 555-123-4567"
		case YearsExperience:
			raw = "7"
		}
		if _, err := Advance(c, step.Field, raw); err != nil {
			panic(err)
		}
	}
	return c
}

func TestFirstMissingEmpty(t *testing.T) {
	field, ok := FirstMissing(New())
	if !ok {
		t.Fatal("expected a missing field")
	}

	if want := CollectionOrder()[0].Field; field != want {
		t.Fatalf("expected %q, got %q", want, field)
	}
}

func TestFirstMissingAllPopulated(t *testing.T) {
	if field, ok := FirstMissing(filled()); ok {
		t.Fatalf("expected no missing field, got %q", field)
	}

	if !Complete(filled()) {
		t.Fatal("expected candidate to be complete")
	}
}

func TestFirstMissingFollowsOrder(t *testing.T) {
	c := filled()
	blank := "   "
	c.Location = &blank
	c.Phone = nil

	field, ok := FirstMissing(c)
	if !ok || field != Phone {
		t.Fatalf("expected phone to be first missing, got %q (%v)", field, ok)
	}

	c.Phone = filled().Phone
	field, ok = FirstMissing(c)
	if !ok || field != Location {
		t.Fatalf("expected blank location to count as missing, got %q (%v)", field, ok)
	}
}

func TestAdvance(t *testing.T) {
	c := New()

	if _, err := Advance(c, Email, "not-an-email"); err == nil {
		t.Fatal("expected validation error")
	} else {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
	}

	if c.Email != nil {
		t.Fatalf("candidate must not change on failure, got %q", *c.Email)
	}

	if _, err := Advance(c, Email, " jane@example.com "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := c.Get(Email)
	if !ok || got != "jane@example.com" {
		t.Fatalf("expected stored email, got %q (%v)", got, ok)
	}

	if _, err := Advance(c, YearsExperience, "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.YearsExperience == nil || *c.YearsExperience != 5.0 {
		t.Fatalf("expected 5.0 years, got %v", c.YearsExperience)
	}
}

func TestHint(t *testing.T) {
	hint, ok := Hint(TechStack)
	if !ok || hint == "" {
		t.Fatalf("expected hint for tech stack")
	}

	if _, ok := Hint(Field("unknown")); ok {
		t.Fatal("expected no hint for unknown field")
	}
}

func TestCollectionOrderIsCopy(t *testing.T) {
	order := CollectionOrder()
	order[0].Field = "mutated"

	if CollectionOrder()[0].Field != FullName {
		t.Fatal("collection order must not be mutable through the returned slice")
	}
}
