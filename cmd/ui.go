package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// termUI is the terminal implementation of the sync engine's UI capability
// set. Navigation is meaningless for one-shot commands, so those effects are
// no-ops; confirmation reads from stdin.
type termUI struct {
	in          io.Reader
	out         io.Writer
	autoConfirm bool
}

func (u *termUI) Confirm(message string) bool {
	if u.autoConfirm {
		return true
	}

	fmt.Fprintf(u.out, "%s [s/N] ", message)
	reader := bufio.NewReader(u.in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "s" || answer == "sim" || answer == "y" || answer == "yes"
}

func (u *termUI) Navigate(string) {}

func (u *termUI) ScheduleNavigate(string, time.Duration) {}
