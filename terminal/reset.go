package terminal

import (
	"io"
	"os"
)

// Sequences that undo what tcell enables on Init
var resetSequences = []string{
	"\x1b[?1003l", // Mouse motion off
	"\x1b[?1002l", // Mouse drag off
	"\x1b[?1000l", // Mouse click off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // Cursor show
	"\x1b[?1049l", // Alt screen exit
	"\x1b[0m",     // Attributes off
	"\x1b[?7h",    // Auto wrap on
}

// EmergencyReset restores a usable terminal when the screen could not be finalized,
// write errors are ignored
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		_, _ = io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
}
