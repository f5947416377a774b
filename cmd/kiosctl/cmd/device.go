package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/punyakios/go-kios-client/cmd/setup"
	"github.com/punyakios/go-kios-client/internal/biometric"
)

const reasonNotConfirmed = "not_confirmed"

// terminalAuthenticator stands in for the biometric sensor: the user confirms with
// hidden input, so the sensor is only available on an interactive terminal.
type terminalAuthenticator struct {
	mu          sync.Mutex
	in          io.Reader
	out         io.Writer
	fd          int
	interactive bool
	readSecret  func(fd int) ([]byte, error)
}

var _ biometric.Authenticator = (*terminalAuthenticator)(nil)

func newTerminalDevice(in io.Reader, out io.Writer) setup.Device {
	a := &terminalAuthenticator{in: in, out: out, fd: -1, readSecret: term.ReadPassword}
	if f, ok := in.(*os.File); ok {
		a.fd = int(f.Fd())
		a.interactive = term.IsTerminal(a.fd)
	}
	return setup.Device{
		Authenticator: a,
		Notifier:      writerNotifier{out: out},
	}
}

func (a *terminalAuthenticator) Sensor(context.Context) (biometric.Sensor, error) {
	if !a.interactive {
		return biometric.Sensor{}, nil
	}
	return biometric.Sensor{Available: true, Type: biometric.BiometryGeneric}, nil
}

func (a *terminalAuthenticator) Authenticate(_ context.Context, prompt string) (biometric.Result, error) {
	if !a.interactive {
		return biometric.Result{}, biometric.ErrBiometricUnavailable
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	fmt.Fprintf(a.out, "%s\nType \"yes\" to confirm or \"pin\" to use the device PIN, leave empty to cancel: ", prompt)
	line, err := a.readSecret(a.fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return biometric.Result{}, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return confirmationResult(string(line)), nil
}

func confirmationResult(answer string) biometric.Result {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return biometric.Result{Success: true}
	case "pin":
		return biometric.Result{Reason: biometric.ReasonUserFallback}
	case "":
		return biometric.Result{Reason: biometric.ReasonUserCancel}
	default:
		return biometric.Result{Reason: reasonNotConfirmed}
	}
}

type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Notify(_ context.Context, title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}
