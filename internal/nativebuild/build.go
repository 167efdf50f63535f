package nativebuild

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aztecprotocol/bb-go/pkg/bb/logging"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes commands. ExecRunner runs them for real; tests and
// dry runs substitute their own.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}

// LinkDirectives are the linker settings a cgo build needs to link the
// library produced by Build.
type LinkDirectives struct {
	SearchPath string
	Libs       []string
}

// LDFlags renders the directives in CGO_LDFLAGS form.
func (d LinkDirectives) LDFlags() string {
	parts := []string{"-L" + d.SearchPath}
	for _, lib := range d.Libs {
		parts = append(parts, "-l"+lib)
	}
	return strings.Join(parts, " ")
}

// Commands returns the configure and build invocations for cfg, in order.
func (c Config) Commands() []Command {
	configure := []string{c.SourceDir, "-B", c.BuildDir}
	if c.Preset != "" {
		configure = append(configure, "--preset="+c.Preset)
	}
	if c.Toolchain != "" {
		configure = append(configure, "--toolchain="+c.Toolchain)
	}
	if c.Profile != "" {
		configure = append(configure, "-DCMAKE_BUILD_TYPE="+c.Profile)
	}
	if c.TargetArch != "" {
		configure = append(configure, "-DTARGET_ARCH="+c.TargetArch)
	}
	keys := make([]string, 0, len(c.Defines))
	for k := range c.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		configure = append(configure, fmt.Sprintf("-D%s=%s", k, c.Defines[k]))
	}

	build := []string{"--build", c.BuildDir, "--target", c.Target}
	if c.Profile != "" {
		build = append(build, "--config", c.Profile)
	}

	return []Command{
		{Name: "cmake", Args: configure, Dir: c.SourceDir},
		{Name: "cmake", Args: build, Dir: c.SourceDir},
	}
}

// Directives returns the link settings for the library cfg produces.
func (c Config) Directives() LinkDirectives {
	return LinkDirectives{
		SearchPath: filepath.Join(c.BuildDir, "lib"),
		Libs:       []string{c.LibName},
	}
}

// Build runs the configure and build steps in order and returns the link
// directives. The first failing step aborts the build.
func Build(ctx context.Context, cfg Config, runner Runner, logger logging.Logger) (LinkDirectives, error) {
	if err := cfg.Validate(); err != nil {
		return LinkDirectives{}, err
	}
	if logger == nil {
		logger = logging.Default()
	}

	for i, cmd := range cfg.Commands() {
		logger.Debug(ctx, "running build step", "step", i+1, "cmd", cmd.String(), "dir", cmd.Dir)
		if err := runner.Run(ctx, cmd); err != nil {
			return LinkDirectives{}, fmt.Errorf("build step %d failed: %w", i+1, err)
		}
	}

	d := cfg.Directives()
	logger.Info(ctx, "native library ready", "target", cfg.Target, "search_path", d.SearchPath)
	return d, nil
}
