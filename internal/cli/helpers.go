package cli

import (
	"bufio"
	"io"
	"strings"
)

// confirm reads one line and reports whether it is an affirmative "y".
func confirm(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())) == "y"
}
