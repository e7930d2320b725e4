// Package clipboard is the consumed copy-to-clipboard capability. Failures
// are never fatal: callers surface a "not copied" outcome and move on.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Copier copies text for the user.
type Copier interface {
	CopyText(text string) error
}

// ErrNoClipboard indicates no clipboard utility is available on this system.
var ErrNoClipboard = errors.New("no clipboard utility found")

// candidate clipboard writers, first match wins.
var writers = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// SystemCopier shells out to the platform clipboard utility.
type SystemCopier struct{}

func (SystemCopier) CopyText(text string) error {
	for _, w := range writers {
		if _, err := exec.LookPath(w[0]); err != nil {
			continue
		}
		cmd := exec.Command(w[0], w[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			log.Warn().Err(err).Str("tool", w[0]).Msg("Clipboard write failed")
			return err
		}
		log.Debug().Str("tool", w[0]).Int("length", len(text)).Msg("Copied to clipboard")
		return nil
	}
	return ErrNoClipboard
}
