package picker

import (
	"os/exec"
	"strings"
)

// execRunner runs picker tools as real subprocesses.
type execRunner struct{}

func (execRunner) Run(tool Tool, lines []string) (string, error) {
	if _, err := exec.LookPath(tool.Name); err != nil {
		return "", ErrToolUnavailable
	}

	args := tool.Args
	if !tool.Stdin {
		args = append(append([]string{}, args...), lines...)
	}

	cmd := exec.Command(tool.Name, args...)
	if tool.Stdin {
		cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	}

	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Ran but exited non-zero (dialog dismissed): no selection.
			return "", nil
		}
		return "", ErrToolUnavailable
	}
	return strings.TrimSpace(string(out)), nil
}
