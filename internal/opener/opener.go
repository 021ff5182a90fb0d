// Package opener hands documents and links to the operating system.
package opener

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener launches targets with the platform's default handler
type Opener struct {
	goos string
	run  func(name string, args ...string) error
}

// New returns an opener for the running platform
func New() *Opener {
	return &Opener{goos: runtime.GOOS, run: start}
}

func start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens a URL (http, mailto, tel...) or a local file. Relative file
// paths are resolved against the working directory.
func (o *Opener) Open(target string) error {
	if target == "" {
		return fmt.Errorf("opener: empty target")
	}
	resolved, err := Resolve(target)
	if err != nil {
		return err
	}
	name, args, err := Command(o.goos, resolved)
	if err != nil {
		return err
	}
	if err := o.run(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", resolved, err)
	}
	return nil
}

// Resolve returns URLs untouched and makes file paths absolute
func Resolve(target string) (string, error) {
	if IsURL(target) {
		return target, nil
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", target, err)
	}
	return abs, nil
}

// IsURL reports whether target carries a scheme. Single letter schemes are
// Windows drive letters.
func IsURL(target string) bool {
	u, err := url.Parse(target)
	return err == nil && len(u.Scheme) > 1
}

// Command returns the launcher for goos
func Command(goos, target string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	}
	return "", nil, fmt.Errorf("opener: unsupported platform %s", goos)
}
