package shell

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/raveberry/netinfo-agent/internal/errs"
)

type Service struct{}

func NewService() *Service {
	return new(Service)
}

// ExecOutput runs the command and returns its stdout. A non-zero exit is
// reported as errs.ErrCommandFailed with the captured stderr attached, so
// callers can tell "the tool refused" apart from "the tool is missing".
func (s *Service) ExecOutput(name string, args ...string) (output []byte, err error) {
	execCmd := exec.Command(name, args...) //nolint:gosec // commands and args come from local config, not requests

	log.Debug().Msgf("ExecOutput: executing cmd: %s", execCmd.String())
	output, err = execCmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, fmt.Errorf("ExecOutput: %s: %w: %s",
				name, errs.ErrCommandFailed, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return output, fmt.Errorf("ExecOutput: %s: %w", name, err)
	}

	return output, nil
}
