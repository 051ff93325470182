package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Context holds the reference points relative paths are resolved against.
// A Context is never mutated after construction; the With* methods return
// modified copies.
type Context struct {
	Cwd      string
	Home     string
	Root     string
	Platform types.Platform
}

// NewContext builds a validated context. Empty root defaults to the
// filesystem root and an empty platform to the running platform.
func NewContext(cwd, home, root string, platform types.Platform) (*Context, error) {
	if root == "" {
		root = string(filepath.Separator)
	}
	if platform == "" {
		platform = types.CurrentPlatform()
	}
	ctx := &Context{
		Cwd:      filepath.Clean(cwd),
		Home:     filepath.Clean(home),
		Root:     filepath.Clean(root),
		Platform: platform,
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// DefaultContext builds a context from the OS: working directory, user home
// directory, the filesystem root and the running platform.
func DefaultContext() (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	return NewContext(cwd, home, "", "")
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// Validate checks the context invariants: every reference point is
// absolute and home lies under root.
func (c *Context) Validate() error {
	for name, p := range map[string]string{"cwd": c.Cwd, "home": c.Home, "root": c.Root} {
		if !filepath.IsAbs(p) {
			return errors.Newf(errors.ErrInvalidInput, "context %s must be an absolute path, got %q", name, p)
		}
	}
	if !IsWithin(c.Home, c.Root) {
		return errors.Newf(errors.ErrInvalidInput, "home %s must be inside root %s", c.Home, c.Root)
	}
	if !c.Platform.IsValid() {
		return errors.Newf(errors.ErrInvalidInput, "unknown platform %q", c.Platform)
	}
	return nil
}

// WithCwd returns a copy of the context with a different working directory
func (c *Context) WithCwd(cwd string) *Context {
	cp := *c
	cp.Cwd = filepath.Clean(cwd)
	return &cp
}

// WithPlatform returns a copy of the context targeting another platform
func (c *Context) WithPlatform(p types.Platform) *Context {
	cp := *c
	cp.Platform = p
	return &cp
}

// String renders the context for logs
func (c *Context) String() string {
	return fmt.Sprintf("cwd=%s home=%s root=%s platform=%s", c.Cwd, c.Home, c.Root, c.Platform)
}

var (
	mu       sync.Mutex
	ambient  *Context
	override []*Context
)

// Current returns the active context: the innermost override if any,
// otherwise the process-wide default created on first use.
func Current() (*Context, error) {
	mu.Lock()
	defer mu.Unlock()

	if n := len(override); n > 0 {
		return override[n-1], nil
	}
	if ambient == nil {
		ctx, err := DefaultContext()
		if err != nil {
			return nil, err
		}
		ambient = ctx
	}
	return ambient, nil
}

// OrCurrent returns ctx when non-nil and the active context otherwise
func OrCurrent(ctx *Context) (*Context, error) {
	if ctx != nil {
		return ctx, nil
	}
	return Current()
}

// Override makes ctx the active context until the returned function is
// called. Overrides nest and must be restored in reverse order.
func Override(ctx *Context) (restore func()) {
	mu.Lock()
	override = append(override, ctx)
	depth := len(override)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if len(override) != depth || override[depth-1] != ctx {
			panic("paths: context overrides restored out of order")
		}
		override = override[:depth-1]
	}
}

// WithContext runs fn with ctx as the active context
func WithContext(ctx *Context, fn func() error) error {
	restore := Override(ctx)
	defer restore()
	return fn()
}
