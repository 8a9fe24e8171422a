package inquire

type (
	// TransformFunc turns a raw value into the stored answer. A non-nil error or a nil
	// value rejects the raw value.
	TransformFunc func(value any, answers Answers) (any, error)

	// DefaultFunc computes a default from the answers produced so far. A nil result means
	// there is no default.
	DefaultFunc func(answers Answers) any

	// PreviousTransform normalizes a pre-supplied answer before it is stored.
	PreviousTransform func(value any) any

	// Question is one of [Literal], [Derived] or [Prompted].
	Question interface {
		Key() string
		question()
	}

	// Literal is answered with a fixed value.
	Literal struct {
		Value any
		Name  string
	}

	// Derived is answered by transforming an earlier answer named Source. It is never
	// shown to the operator.
	Derived struct {
		Transform TransformFunc
		Name      string
		Source    string
	}

	// Prompted is asked interactively.
	Prompted struct {
		Default   DefaultFunc
		Transform TransformFunc
		Name      string
		Text      string
	}
)

func (l Literal) Key() string  { return l.Name }
func (d Derived) Key() string  { return d.Name }
func (p Prompted) Key() string { return p.Name }

func (Literal) question()  {}
func (Derived) question()  {}
func (Prompted) question() {}

// Static returns a DefaultFunc that always yields v.
func Static(v any) DefaultFunc {
	return func(Answers) any {
		return v
	}
}
