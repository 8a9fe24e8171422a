package project

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errFieldNotFound = errors.New("field not found")

func isDelim(t json.Token, want ...json.Delim) bool {
	d, ok := t.(json.Delim)
	if !ok {
		return false
	}

	for _, w := range want {
		if d == w {
			return true
		}
	}

	return false
}

// lookupField decodes only as much of data as needed to reach the value at path, which is
// written as ".a.b.c". Keys may contain any character except the dot.
func lookupField(ctx context.Context, data []byte, path string) (value any, err error) {
	if !strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return nil, fmt.Errorf("path %q must start and must not end with the dot character", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var walked strings.Builder

	for _, key := range strings.Split(path, ".")[1:] {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped looking up %q: %w", path, err)
		}

		walked.WriteString("." + key)

		if err = seekKey(dec, key); err != nil {
			return nil, fmt.Errorf("failed to reach %q: %w", walked.String(), err)
		}
	}

	if err = dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode the value at %q: %w", path, err)
	}

	return value, nil
}

// seekKey consumes the opening brace of an object and every member up to and including
// the name of the member called key.
func seekKey(dec *json.Decoder, key string) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}

	if !isDelim(t, '{') {
		return errors.New("not a JSON object")
	}

	for dec.More() {
		if t, err = dec.Token(); err != nil {
			return err
		}

		if name, ok := t.(string); ok && name == key {
			return nil
		}

		if err = skipValue(dec); err != nil {
			return err
		}
	}

	return errFieldNotFound
}

func skipValue(dec *json.Decoder) error {
	depth := 0

	for {
		t, err := dec.Token()
		if err != nil {
			return err
		}

		switch {
		case isDelim(t, '{', '['):
			depth += 1
		case isDelim(t, '}', ']'):
			depth -= 1
		}

		if depth == 0 {
			return nil
		}
	}
}
