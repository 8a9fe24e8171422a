// Package inquire resolves a declarative list of questions into an ordered set of answers.
// Questions are answered from pre-supplied values, derived from earlier answers, or asked
// interactively through a [Prompter]; interactive answers rejected by their transform are
// asked again until a valid value is supplied.
package inquire
