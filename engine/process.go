package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"dastan/communication"

	"github.com/rs/zerolog/log"
)

// SettleDelay gives the game time to process an answer before it is read from again.
const SettleDelay = 50 * time.Millisecond

var _ communication.Communicator = (*Stream)(nil)

// Stream is a line oriented connection to a game's output and input.
type Stream struct {
	reader *bufio.Reader
	writer io.Writer
	delay  time.Duration
}

func NewStream(r io.Reader, w io.Writer, delay time.Duration) *Stream {
	return &Stream{
		reader: bufio.NewReader(r),
		writer: w,
		delay:  delay,
	}
}

func (s *Stream) ReadLine() (string, error) {
	for {
		line, err := s.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			log.Debug().Str("from", "game").Msg(line)
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (s *Stream) ReadTo(suffix string) (string, error) {
	var sb strings.Builder
	for !strings.HasSuffix(sb.String(), suffix) {
		b, err := s.reader.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		sb.WriteByte(b)
	}
	log.Debug().Str("from", "game").Msg(sb.String())
	return sb.String(), nil
}

func (s *Stream) WriteLine(line string) error {
	log.Debug().Str("to", "game").Msg(line)
	if _, err := io.WriteString(s.writer, line+"\n"); err != nil {
		return fmt.Errorf("failed to write %q: %w", line, err)
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return nil
}

// CloseGrace is how long Close waits for the game to exit on its own before killing it.
const CloseGrace = 2 * time.Second

// ProcessEngine runs the game as a child process and talks to it over its standard streams.
type ProcessEngine struct {
	*Stream
	cmd   *exec.Cmd
	stdin io.WriteCloser
	grace time.Duration
}

// StartProcess launches script with the given interpreter.
func StartProcess(ctx context.Context, interpreter, script string) (*ProcessEngine, error) {
	cmd := exec.CommandContext(ctx, interpreter, script)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open game input: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open game output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s %s: %w", interpreter, script, err)
	}
	log.Info().Msgf("started game %s (pid %d)", script, cmd.Process.Pid)

	return &ProcessEngine{
		Stream: NewStream(stdout, stdin, SettleDelay),
		cmd:    cmd,
		stdin:  stdin,
		grace:  CloseGrace,
	}, nil
}

// Close closes the game's input and waits for it to exit. A game still
// running after the grace period is killed.
func (p *ProcessEngine) Close() error {
	if err := p.stdin.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Warn().Err(err).Msg("failed to close game input")
	}

	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case <-time.After(p.grace):
		log.Warn().Msgf("game did not exit within %s, killing it", p.grace)
		if killErr := p.cmd.Process.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
			return fmt.Errorf("failed to kill game: %w", killErr)
		}
		err = <-done
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The game exits with an error once its input is gone mid game
		log.Warn().Msgf("game exited with status %d", exitErr.ExitCode())
		return nil
	}
	return err
}
