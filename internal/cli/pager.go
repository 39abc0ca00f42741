package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"

	"github.com/tably/tably/internal/util"
)

// printOrPage either prints text to stdout or invokes the 'less'
// utility to display it. 'less' is invoked if stdout is connected to
// a tty, the provided width is too wide for the tty, and 'less' is
// actually installed.
func printOrPage(text string, width int) {
	termWidth, _, err := term.GetSize(1)
	if err != nil || width < termWidth {
		fmt.Print(text)
		return
	}

	pagerCmd := []string{"less", "-S"}
	less, err := exec.LookPath(pagerCmd[0])
	if err != nil {
		fmt.Print(text)
		return
	}

	util.ProgressMsg(shellquote.Join(pagerCmd...))

	cmd := exec.Cmd{
		Path: less,
		Args: pagerCmd,
		// less needs an explicit charset when LANG and friends are
		// unset (as in minimal containers), or it shows the box
		// glyphs as escape sequences. See the man page for less.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		util.Die("connecting pipe to pager stdin: %s", err)
	}

	if _, err := io.WriteString(stdin, text); err != nil {
		util.Die("writing to pager: %s", err)
	}
	if err := stdin.Close(); err != nil {
		util.Die("closing pipe to pager stdin: %s", err)
	}

	if err := cmd.Run(); err != nil {
		util.Die("running pager: %s", err)
	}
}
