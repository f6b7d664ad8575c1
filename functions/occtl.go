package functions

import (
	"fmt"
	"strings"

	"github.com/gravitl/netmaker/logger"
)

// Occtl - runs an occtl command on the server and prints its output
func Occtl(command string, args []string) error {
	c := NewClient()
	out, err := c.Occtl.Command(command, strings.Join(args, " "))
	if err != nil || recovered(c) {
		return err
	}
	lines, ok := out.Result.([]any)
	if Long || !ok {
		PrettyPrint(out)
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// Reload - reloads the ocserv configuration
func Reload() error {
	c := NewClient()
	if err := c.Occtl.Reload(); err != nil || recovered(c) {
		return err
	}
	logger.Log(0, "ocserv reloaded")
	return nil
}

// Stats - prints the server statistics
func Stats() error {
	c := NewClient()
	stats, err := c.Stats.GetStats()
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(stats)
	return nil
}
