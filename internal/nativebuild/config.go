package nativebuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvBuildDir overrides Config.BuildDir when set.
const EnvBuildDir = "BB_BUILD_DIR"

// Config describes how to build the native library.
type Config struct {
	SourceDir  string            `toml:"source_dir"`
	BuildDir   string            `toml:"build_dir"`
	Profile    string            `toml:"profile"`
	TargetArch string            `toml:"target_arch"`
	Preset     string            `toml:"preset"`
	Toolchain  string            `toml:"toolchain"`
	Target     string            `toml:"target"`
	LibName    string            `toml:"lib_name"`
	Defines    map[string]string `toml:"defines"`
}

// DefaultConfig mirrors the upstream build: a RelWithAssert build of the bb
// target with the clang16 preset for skylake.
func DefaultConfig() Config {
	return Config{
		SourceDir:  "../cpp",
		BuildDir:   "build",
		Profile:    "RelWithAssert",
		TargetArch: "skylake",
		Preset:     "clang16",
		Toolchain:  "../cmake/toolchains/x86_64-linux.cmake",
		Target:     "bb",
		LibName:    "bb",
	}
}

// Load reads a TOML config from path, fills unset fields from DefaultConfig
// and applies the environment override. An empty path yields the defaults.
// Relative paths are resolved against the directory holding the file (the
// working directory when path is empty) and returned absolute.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	base := "."
	if path != "" {
		var file Config
		md, err := toml.DecodeFile(path, &file)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
		}
		cfg = merge(cfg, file)
		base = filepath.Dir(path)
	}
	if dir := strings.TrimSpace(os.Getenv(EnvBuildDir)); dir != "" {
		cfg.BuildDir = dir
	}

	// cmake runs inside SourceDir while the link directives are consumed
	// from the caller's directory, so every path must be absolute.
	for _, p := range []*string{&cfg.SourceDir, &cfg.BuildDir, &cfg.Toolchain} {
		abs, err := resolve(base, *p)
		if err != nil {
			return Config{}, fmt.Errorf("config resolve path %q: %w", *p, err)
		}
		*p = abs
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the fields needed to run cmake are present.
func (c Config) Validate() error {
	var errs []error
	if c.SourceDir == "" {
		errs = append(errs, errors.New("source_dir is required"))
	}
	if c.BuildDir == "" {
		errs = append(errs, errors.New("build_dir is required"))
	}
	if c.Target == "" {
		errs = append(errs, errors.New("target is required"))
	}
	if c.LibName == "" {
		errs = append(errs, errors.New("lib_name is required"))
	}
	if strings.ContainsAny(c.LibName, `/\ `) {
		errs = append(errs, fmt.Errorf("lib_name %q must be a bare library name", c.LibName))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid build config: %w", errors.Join(errs...))
	}
	return nil
}

func merge(dst, src Config) Config {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.SourceDir, src.SourceDir)
	set(&dst.BuildDir, src.BuildDir)
	set(&dst.Profile, src.Profile)
	set(&dst.TargetArch, src.TargetArch)
	set(&dst.Preset, src.Preset)
	set(&dst.Toolchain, src.Toolchain)
	set(&dst.Target, src.Target)
	set(&dst.LibName, src.LibName)
	if len(src.Defines) > 0 {
		dst.Defines = src.Defines
	}
	return dst
}

func resolve(base, p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Abs(filepath.Join(base, p))
}
