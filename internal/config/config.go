// Package config loads the carousel configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultAssetsDir is where card images are looked up when assets_dir is
	// not set.
	DefaultAssetsDir = "assets"

	// DefaultSettleDelay is the deferred centering delay.
	DefaultSettleDelay = 100 * time.Millisecond
)

var (
	// ErrNoImages is returned for a configured screen without an images key.
	ErrNoImages = errors.New("screen has no images list")

	// ErrUnknownScreen is returned for a screen that is neither configured
	// nor built in.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrInvalidProtocol is returned for an unsupported image_protocol.
	ErrInvalidProtocol = errors.New("invalid image protocol")
)

// Protocols lists the accepted image_protocol values.
var Protocols = []string{"auto", "kitty", "sixel", "none"}

// defaultImages is the identifier list of the built-in screens.
var defaultImages = []string{"image1", "image2", "image3", "image4"}

// builtinScreens are available without configuration.
var builtinScreens = map[string]ScreenConfig{
	"home":   {Title: "Home", Images: defaultImages},
	"sample": {Title: "Sample", Images: defaultImages},
}

type Config struct {
	AssetsDir     string `koanf:"assets_dir"`
	CacheDir      string `koanf:"cache_dir"`       // empty means the XDG cache home
	ImageProtocol string `koanf:"image_protocol"`  // "auto", "kitty", "sixel" or "none"
	SettleDelayMS int    `koanf:"settle_delay_ms"` // deferred centering delay (default: 100)

	Screens map[string]ScreenConfig `koanf:"screens"`

	// screens whose table has an images key
	withImages map[string]bool
}

// ScreenConfig describes one host screen.
type ScreenConfig struct {
	Title  string   `koanf:"title"`
	Images []string `koanf:"images"`
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist; otherwise the XDG config file and ./config.toml
// are read when present, the latter winning.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("read %s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{
		AssetsDir:     DefaultAssetsDir,
		ImageProtocol: "auto",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.withImages = make(map[string]bool)
	for name := range cfg.Screens {
		cfg.withImages[name] = k.Exists("screens." + name + ".images")
	}

	cfg.AssetsDir = expandPath(cfg.AssetsDir)
	cfg.CacheDir = expandPath(cfg.CacheDir)

	cfg.ImageProtocol = strings.ToLower(strings.TrimSpace(cfg.ImageProtocol))
	if cfg.ImageProtocol == "" {
		cfg.ImageProtocol = "auto"
	}
	if !slices.Contains(Protocols, cfg.ImageProtocol) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProtocol, cfg.ImageProtocol)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/carousel/config.toml
		filepath.Join(xdg.ConfigHome, "carousel", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Screen returns the configuration of a host screen. A configured screen
// must list its images; built-in screens fill in what is not configured.
func (c *Config) Screen(name string) (ScreenConfig, error) {
	builtin, isBuiltin := builtinScreens[name]

	sc, ok := c.Screens[name]
	if !ok {
		if !isBuiltin {
			return ScreenConfig{}, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
		}
		sc = builtin
		sc.Images = slices.Clone(builtin.Images)
		return sc, nil
	}

	if !c.withImages[name] {
		return ScreenConfig{}, fmt.Errorf("screen %q: %w", name, ErrNoImages)
	}
	if sc.Title == "" {
		sc.Title = builtin.Title
	}
	if sc.Title == "" {
		sc.Title = name
	}
	return sc, nil
}

// SettleDelay returns the deferred centering delay with the default applied.
func (c *Config) SettleDelay() time.Duration {
	if c.SettleDelayMS <= 0 {
		return DefaultSettleDelay
	}
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}
