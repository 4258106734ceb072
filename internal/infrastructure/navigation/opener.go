// Package navigation opens resolved destinations with the desktop's URL
// handler.
package navigation

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/logging"
)

const launchTimeout = 10 * time.Second

// DefaultAllowedSchemes are the schemes opened when none are configured.
var DefaultAllowedSchemes = []string{"http", "https"}

// Opener implements port.Navigator by running an external command with
// the destination URL as its last argument.
type Opener struct {
	command []string
	allowed map[string]struct{}
}

var _ port.Navigator = (*Opener)(nil)

// NewOpener creates an opener. An empty command selects the platform
// handler (xdg-open, open). An empty scheme list selects
// DefaultAllowedSchemes.
func NewOpener(command string, allowedSchemes []string) *Opener {
	o := &Opener{
		command: strings.Fields(command),
		allowed: make(map[string]struct{}),
	}
	if len(o.command) == 0 {
		o.command = platformCommand()
	}
	if len(allowedSchemes) == 0 {
		allowedSchemes = DefaultAllowedSchemes
	}
	for _, s := range allowedSchemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			o.allowed[s] = struct{}{}
		}
	}
	return o
}

func platformCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open implements port.Navigator. Failures are reported in the result.
func (o *Opener) Open(ctx context.Context, rawURL string) port.NavigationResult {
	log := logging.FromContext(ctx)

	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Scheme == "" {
		return port.NavigationResult{Error: fmt.Sprintf("invalid url %q", rawURL)}
	}
	scheme := strings.ToLower(parsed.Scheme)
	if _, ok := o.allowed[scheme]; !ok {
		return port.NavigationResult{Error: fmt.Sprintf("scheme %q is not allowed", scheme)}
	}

	if len(o.command) == 0 {
		return port.NavigationResult{Error: "no open command configured"}
	}
	bin, err := exec.LookPath(o.command[0])
	if err != nil {
		return port.NavigationResult{Error: fmt.Sprintf("open command not found: %s", o.command[0])}
	}

	ctx, cancel := context.WithTimeout(ctx, launchTimeout)
	defer cancel()

	args := append(append([]string{}, o.command[1:]...), parsed.String())
	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Debug().Err(err).Str("output", strings.TrimSpace(string(out))).Msg("open command failed")
		return port.NavigationResult{Error: fmt.Sprintf("open %s: %v", o.command[0], err)}
	}

	log.Debug().Str("url", parsed.String()).Str("command", o.command[0]).Msg("opened destination")
	return port.NavigationResult{Success: true}
}
