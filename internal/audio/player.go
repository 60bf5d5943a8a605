package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vytor/kanaflash/internal/logger"
)

// CommandPlayer pipes the clip into an external program's stdin, for example
// "mpg123 -q -" or "ffplay -nodisp -autoexit -loglevel quiet -".
type CommandPlayer struct {
	name string
	args []string
}

// NewCommandPlayer parses a whitespace separated command line. An empty
// command yields nil.
func NewCommandPlayer(command string) *CommandPlayer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	return &CommandPlayer{name: fields[0], args: fields[1:]}
}

func (p *CommandPlayer) Play(ctx context.Context, clip Clip) error {
	log := logger.FromContext(ctx).WithPrefix("audio_player").WithField("romaji", clip.Romaji)

	cmd := exec.CommandContext(ctx, p.name, p.args...)
	cmd.Stdin = bytes.NewReader(clip.Data)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("playing %d bytes with %s", len(clip.Data), p.name)
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", p.name, err, msg)
		}
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}
