package inquire

import (
	"context"
	"errors"
	"fmt"
)

type (
	Logger interface {
		Error(msg any, keyvals ...any)
		Debug(msg any, keyvals ...any)
	}

	// Prompt is a single request for operator input.
	Prompt struct {
		Text       string
		Default    string
		HasDefault bool
		// Recall asks the prompter to pre-fill the input with Default.
		Recall bool
	}

	Prompter interface {
		Ask(ctx context.Context, p Prompt) (string, error)
	}

	Options struct {
		PreviousTransforms map[string]PreviousTransform
		PreAnswers         Answers
		Recall             bool
	}

	Resolver struct {
		prompter Prompter
		logger   Logger
	}
)

var (
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrUnknownAnswer     = errors.New("unknown answer")
	ErrDuplicateQuestion = errors.New("duplicate question")
)

func NewResolver(prompter Prompter, logger Logger) *Resolver {
	return &Resolver{prompter: prompter, logger: logger}
}

// Resolve produces exactly one answer per question, in question order, followed by any
// pre-answers that no question claimed. Questions named by a pre-answer are never asked.
//
// Non-nil returned error wraps [ErrDuplicateQuestion], [ErrUnknownAnswer], [ErrInvalidAnswer],
// or the error returned by the prompter.
func (r *Resolver) Resolve(ctx context.Context, questions []Question, opts Options) (Answers, error) {
	seen := make(map[string]struct{}, len(questions))

	for _, q := range questions {
		if _, ok := seen[q.Key()]; ok {
			return nil, fmt.Errorf("%w: %q is declared more than once", ErrDuplicateQuestion, q.Key())
		}

		seen[q.Key()] = struct{}{}
	}

	answers := make(Answers, 0, len(questions)+len(opts.PreAnswers))

	for _, q := range questions {
		var (
			value any
			err   error
		)

		if pre, ok := opts.PreAnswers.Lookup(q.Key()); ok {
			value = pre

			if fn := opts.PreviousTransforms[q.Key()]; fn != nil {
				value = fn(pre)
			}

			r.logger.Debug("using pre-supplied answer", "name", q.Key(), "value", value)

			answers = append(answers, Answer{Name: q.Key(), Value: value})

			continue
		}

		switch q := q.(type) {
		case Literal:
			value = q.Value
		case Derived:
			value, err = derive(q, answers)
		case Prompted:
			value, err = r.ask(ctx, q, answers, opts.Recall)
		default:
			err = fmt.Errorf("unsupported question type %T for %q", q, q.Key())
		}

		if err != nil {
			return nil, err
		}

		answers = append(answers, Answer{Name: q.Key(), Value: value})
	}

	for _, pre := range opts.PreAnswers {
		if _, ok := seen[pre.Name]; !ok {
			answers = append(answers, pre)
		}
	}

	return answers, nil
}

func derive(q Derived, answers Answers) (any, error) {
	src, ok := answers.Lookup(q.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q derives from %q, which has no earlier answer", ErrUnknownAnswer, q.Name, q.Source)
	}

	if q.Transform == nil {
		return src, nil
	}

	value, err := q.Transform(src, answers)
	if err != nil {
		return nil, fmt.Errorf("%w: derived answer %q rejected %v: %w", ErrInvalidAnswer, q.Name, src, err)
	}

	if value == nil {
		return nil, fmt.Errorf("%w: derived answer %q rejected %v", ErrInvalidAnswer, q.Name, src)
	}

	return value, nil
}

func (r *Resolver) ask(ctx context.Context, q Prompted, answers Answers, recall bool) (any, error) {
	var def any

	if q.Default != nil {
		def = q.Default(answers)
	}

	p := Prompt{Text: q.Text, Recall: recall}

	if def != nil {
		p.Default = fmt.Sprint(def)
		p.HasDefault = true
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped before %q was answered: %w", q.Name, err)
		}

		input, err := r.prompter.Ask(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read an answer for %q: %w", q.Name, err)
		}

		var raw any = input

		if input == "" && def != nil {
			raw = def
		}

		if q.Transform == nil {
			return raw, nil
		}

		value, err := q.Transform(raw, answers)
		if err == nil && value != nil {
			return value, nil
		}

		if err != nil {
			r.logger.Error(err.Error())
		} else {
			r.logger.Error(fmt.Sprintf("%q is not a valid answer", input))
		}
	}
}
