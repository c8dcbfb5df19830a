// Package prompt holds the block templates, the shared system prompt,
// and the renderer that substitutes task parameters into template slots.
package prompt

import (
	"fmt"
	"strings"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// Lookup returns the template for a block type.
func Lookup(bt domain.BlockType) (string, bool) {
	t, ok := templates[bt]
	return t, ok
}

// BlockTypes lists every block type that has a template.
func BlockTypes() []domain.BlockType {
	types := make([]domain.BlockType, 0, len(templates))
	for bt := range templates {
		types = append(types, bt)
	}
	return types
}

// Render substitutes params into the block type's template and returns
// the finished prompt. A missing required parameter is a local failure:
// the caller converts it to an error result without touching any other
// task. Slot syntax follows the templates' own convention: {name} is a
// parameter slot, doubled braces are literals — "{{total_savings}}"
// renders as "{total_savings}", the placeholder the downstream assembler
// fills in.
func Render(bt domain.BlockType, params map[string]string) (string, error) {
	tmpl, ok := templates[bt]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownBlockType, bt)
	}
	return substitute(tmpl, params)
}

func substitute(tmpl string, params map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		switch c := tmpl[i]; c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated slot at offset %d", i)
			}
			name := tmpl[i+1 : i+end]
			val, ok := params[name]
			if !ok {
				return "", fmt.Errorf("%w: %q", domain.ErrMissingParam, name)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("stray %q at offset %d", "}", i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}
