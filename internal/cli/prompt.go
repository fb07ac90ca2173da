package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks whether to amend the commit and reads one line of input.
// EOF before any input declines.
func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nAmend the commit [Y/n]: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return parseYesNo(line)
}

// parseYesNo interprets a prompt answer. Empty input counts as yes.
func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y", "yes", "1":
		return true
	}
	return false
}
