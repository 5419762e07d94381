package candidate

// Field identifies a single piece of candidate information.
type Field string

const (
	FullName         Field = "full_name"
	Email            Field = "email"
	Phone            Field = "phone"
	YearsExperience  Field = "years_experience"
	DesiredPositions Field = "desired_positions"
	Location         Field = "location"
	TechStack        Field = "tech_stack"
)

func (f Field) String() string {
	return string(f)
}

// Step pairs a field with the default question used to ask for it.
type Step struct {
	Field Field
	Hint  string
}

var collectionOrder = []Step{
	{Field: FullName, Hint: "What's your full name?"},
	{Field: Email, Hint: "What's your email address?"},
	{Field: Phone, Hint: "What's your phone number (with country code if applicable)?"},
	{Field: YearsExperience, Hint: "How many years of professional experience do you have?"},
	{Field: DesiredPositions, Hint: "Which role(s) are you targeting? (e.g., Backend Engineer, Data Scientist)"},
	{Field: Location, Hint: "What's your current city and country?"},
	{Field: TechStack, Hint: "Please list your tech stack: languages, frameworks, databases, and tools you're comfortable with."},
}

// CollectionOrder returns the required fields in the order they are asked.
// The returned slice is a copy.
func CollectionOrder() []Step {
	out := make([]Step, len(collectionOrder))
	copy(out, collectionOrder)
	return out
}

// Hint returns the default question for the field.
func Hint(field Field) (string, bool) {
	for _, step := range collectionOrder {
		if step.Field == field {
			return step.Hint, true
		}
	}
	return "", false
}

// Known reports whether the field is part of the collection order.
func Known(field Field) bool {
	_, ok := Hint(field)
	return ok
}
