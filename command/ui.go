package command

import (
	"fmt"
	"github.com/jwalton/gchalk"
	"io"
)

const errorColor = "#c62828"

type ui struct {
	stdout io.Writer
	stderr io.Writer
}

func newUi(stdout, stderr io.Writer) *ui {
	return &ui{
		stdout: stdout,
		stderr: stderr,
	}
}

// Token prints a labeled token. Tokens are never colored so the output can be
// piped as is.
func (ui *ui) Token(label, token string) {
	if _, err := fmt.Fprintf(ui.stdout, "%s: %s\n", label, token); err != nil {
		panic(err)
	}
}

func (ui *ui) Errorf(format string, a ...interface{}) {
	msg := gchalk.WithHex(errorColor).Sprintf(format, a...)
	if _, err := io.WriteString(ui.stderr, msg); err != nil {
		panic(err)
	}
}
