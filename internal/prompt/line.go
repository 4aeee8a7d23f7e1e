package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/propapp-install/internal/messages"
)

// LineUI reads one line per prompt from a plain reader. It is used when stdin is
// piped or redirected and the huh forms cannot render.
type LineUI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineUI returns a LineUI that prints prompts to out and reads answers from in.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{in: bufio.NewReader(in), out: out}
}

// Input prints title and stores the next line, without its line ending, in value.
// End of input yields whatever was read so far, possibly the empty string.
func (ui *LineUI) Input(title string, value *string) error {
	if _, err := fmt.Fprintf(ui.out, messages.PromptLineFmt, title); err != nil {
		return err
	}
	line, err := ui.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf(messages.PromptReadFailedFmt, title, err)
	}
	*value = strings.TrimRight(line, "\r\n")
	return nil
}

// SecretInput behaves like Input; a non-terminal reader has no echo to suppress.
func (ui *LineUI) SecretInput(title string, value *string) error {
	return ui.Input(title, value)
}
