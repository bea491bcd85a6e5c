package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the command's output and reads the
// answer from the app input. Anything but y/yes, including EOF, is a no.
func confirm(cmd *cobra.Command, app *App, message string) bool {
	return promptYesNoIO(app.input(), cmd.OutOrStdout(), message)
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}
	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readPromptLine reads one byte at a time up to LF or CR, so the rest of
// the input stays unread for the next prompt.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}
	var buf []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			return string(buf), err
		}
	}
}
