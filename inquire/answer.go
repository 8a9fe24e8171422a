package inquire

import "fmt"

type (
	Answer struct {
		Value any
		Name  string
	}

	// Answers keeps answers in the order they were produced.
	Answers []Answer
)

func (a Answers) Lookup(name string) (value any, ok bool) {
	for i := range a {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}

	return nil, false
}

func (a Answers) Has(name string) bool {
	_, ok := a.Lookup(name)

	return ok
}

// String returns the string form of the named answer, or "" when it is absent or nil.
func (a Answers) String(name string) string {
	v, ok := a.Lookup(name)
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// At supports positional cross-references between answers.
func (a Answers) At(index int) (Answer, bool) {
	if index < 0 || index >= len(a) {
		return Answer{}, false
	}

	return a[index], true
}

// With returns a copy of a with one more answer appended; a itself is not modified.
func (a Answers) With(name string, value any) Answers {
	out := make(Answers, len(a), len(a)+1)
	copy(out, a)

	return append(out, Answer{Name: name, Value: value})
}

func (a Answers) Names() []string {
	names := make([]string, len(a))

	for i := range a {
		names[i] = a[i].Name
	}

	return names
}
