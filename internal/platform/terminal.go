package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// PausePrompt is printed while waiting for acknowledgment.
const PausePrompt = "Press Enter to continue..."

// IsTerminal reports whether v is an *os.File attached to a terminal,
// including Cygwin/MSYS pseudo terminals on Windows.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Pause prints PausePrompt to w and blocks until a line (or EOF) is read from r.
func Pause(r io.Reader, w io.Writer) error {
	fmt.Fprint(w, PausePrompt)
	_, err := bufio.NewReader(r).ReadString('\n')
	fmt.Fprintln(w)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("waiting for acknowledgment: %w", err)
	}
	return nil
}
