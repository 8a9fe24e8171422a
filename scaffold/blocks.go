package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

type block struct {
	name  string
	start int
	end   int
}

var (
	beginRegex = regexp.MustCompile(`librarian:begin\s+([\w.-]+)`)
	endRegex   = regexp.MustCompile(`librarian:end\s+([\w.-]+)`)
)

// findBlocks returns the byte ranges of the named blocks in content. A range covers the
// whole begin line through the whole end line.
func findBlocks(content string) ([]block, error) {
	var (
		blocks []block
		open   *block
		offset int
	)

	for _, line := range strings.SplitAfter(content, "\n") {
		if m := beginRegex.FindStringSubmatch(line); m != nil {
			if open != nil {
				return nil, fmt.Errorf("block %q begins inside block %q", m[1], open.name)
			}

			open = &block{name: m[1], start: offset}
		} else if m := endRegex.FindStringSubmatch(line); m != nil {
			if open == nil || open.name != m[1] {
				return nil, fmt.Errorf("block %q ends without beginning", m[1])
			}

			open.end = offset + len(line)
			blocks = append(blocks, *open)
			open = nil
		}

		offset += len(line)
	}

	if open != nil {
		return nil, fmt.Errorf("block %q never ends", open.name)
	}

	return blocks, nil
}

func lookupBlock(blocks []block, name string) (block, bool) {
	for _, b := range blocks {
		if b.name == name {
			return b, true
		}
	}

	return block{}, false
}

// MergeBlocks replaces each named block of existing with the block of the same name in
// rendered, and appends blocks existing does not have yet. Everything outside the blocks of
// existing is kept as it is.
func MergeBlocks(existing, rendered string) (string, error) {
	src, err := findBlocks(rendered)
	if err != nil {
		return "", fmt.Errorf("template: %w", err)
	}

	dst, err := findBlocks(existing)
	if err != nil {
		return "", fmt.Errorf("existing file: %w", err)
	}

	out := existing

	for _, b := range src {
		text := rendered[b.start:b.end]
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}

		if d, ok := lookupBlock(dst, b.name); ok {
			out = out[:d.start] + text + out[d.end:]
		} else {
			if out != "" && !strings.HasSuffix(out, "\n") {
				out += "\n"
			}

			out += text
		}

		if dst, err = findBlocks(out); err != nil {
			return "", err
		}
	}

	return out, nil
}
