// ABOUTME: Placement defaults per overlay kind, loaded with viper from YAML and ANCHOR_ env vars
// ABOUTME: Validate reports every bad field under ErrInvalid; Save writes YAML via yaml.v3

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/apuya/react-basics-ui-sub003/internal/log"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
	"github.com/apuya/react-basics-ui-sub003/pkg/tui/placement"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix prefixes environment overrides, e.g. ANCHOR_MENU_SIDE=top.
const EnvPrefix = "ANCHOR"

// Overlay holds the placement defaults for one kind of overlay.
type Overlay struct {
	Side    string `mapstructure:"side" yaml:"side"`
	Align   string `mapstructure:"align" yaml:"align"`
	Padding int    `mapstructure:"padding" yaml:"padding"`
	Gap     int    `mapstructure:"gap" yaml:"gap"`
	// Width and Height are the size assumed before the panel is measured.
	// Zero means the overlay's own estimate.
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// Settings is the complete configuration.
type Settings struct {
	Tooltip       Overlay       `mapstructure:"tooltip" yaml:"tooltip"`
	Popover       Overlay       `mapstructure:"popover" yaml:"popover"`
	DatePicker    Overlay       `mapstructure:"datepicker" yaml:"datepicker"`
	Menu          Overlay       `mapstructure:"menu" yaml:"menu"`
	FrameInterval time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Tooltip:       Overlay{Side: "top", Align: "center", Padding: 1},
		Popover:       Overlay{Side: "bottom", Align: "start", Padding: 1, Width: 40},
		DatePicker:    Overlay{Side: "bottom", Align: "start", Padding: 1},
		Menu:          Overlay{Side: "bottom", Align: "start", Padding: 1},
		FrameInterval: anchor.DefaultFrameInterval,
		LogLevel:      "info",
	}
}

// overlays maps config keys to overlay settings, in a stable order.
func (s *Settings) overlays() []struct {
	key string
	o   *Overlay
} {
	return []struct {
		key string
		o   *Overlay
	}{
		{"tooltip", &s.Tooltip},
		{"popover", &s.Popover},
		{"datepicker", &s.DatePicker},
		{"menu", &s.Menu},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	for _, e := range d.overlays() {
		v.SetDefault(e.key+".side", e.o.Side)
		v.SetDefault(e.key+".align", e.o.Align)
		v.SetDefault(e.key+".padding", e.o.Padding)
		v.SetDefault(e.key+".gap", e.o.Gap)
		v.SetDefault(e.key+".width", e.o.Width)
		v.SetDefault(e.key+".height", e.o.Height)
	}
	v.SetDefault("frame_interval", d.FrameInterval)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads settings from path, layered over the defaults and under
// ANCHOR_* environment variables. An empty path means ConfigFile(), which
// may be absent; an explicit path must exist.
func Load(path string) (*Settings, error) {
	if path == "" {
		return load(ConfigFile(), false)
	}
	return load(path, true)
}

func load(path string, required bool) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		log.Debug("no config at %s; using defaults", path)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every field and reports all problems at once.
func (s *Settings) Validate() error {
	var problems []string
	for _, e := range s.overlays() {
		if _, err := placement.ParseSide(e.o.Side); err != nil {
			problems = append(problems, fmt.Sprintf("%s.side: %v", e.key, err))
		}
		if _, err := placement.ParseAlign(e.o.Align); err != nil {
			problems = append(problems, fmt.Sprintf("%s.align: %v", e.key, err))
		}
		if e.o.Padding < 0 {
			problems = append(problems, fmt.Sprintf("%s.padding must not be negative", e.key))
		}
		if e.o.Gap < 0 {
			problems = append(problems, fmt.Sprintf("%s.gap must not be negative", e.key))
		}
		if e.o.Width < 0 || e.o.Height < 0 {
			problems = append(problems, fmt.Sprintf("%s.width/height must not be negative", e.key))
		}
	}
	if s.FrameInterval <= 0 {
		problems = append(problems, "frame_interval must be positive")
	}
	if _, ok := log.ParseLevel(s.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("log_level: unknown level %q", s.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Placement parses the side and align names.
func (o Overlay) Placement() (placement.Placement, error) {
	side, err := placement.ParseSide(o.Side)
	if err != nil {
		return placement.Placement{}, err
	}
	align, err := placement.ParseAlign(o.Align)
	if err != nil {
		return placement.Placement{}, err
	}
	return placement.Placement{Side: side, Align: align}, nil
}

// Options converts the overlay settings into controller options. Unparseable
// names are skipped so the controller keeps its own default.
func (o Overlay) Options() []anchor.Option {
	opts := []anchor.Option{
		anchor.WithPadding(o.Padding),
		anchor.WithGap(o.Gap),
	}
	if side, err := placement.ParseSide(o.Side); err == nil {
		opts = append(opts, anchor.WithSide(side))
	}
	if align, err := placement.ParseAlign(o.Align); err == nil {
		opts = append(opts, anchor.WithAlign(align))
	}
	if size := (placement.Size{Width: o.Width, Height: o.Height}); size.Valid() {
		opts = append(opts, anchor.WithDefaultSize(size))
	}
	return opts
}

// yamlSettings mirrors Settings with a human-readable frame interval.
type yamlSettings struct {
	Tooltip       Overlay `yaml:"tooltip"`
	Popover       Overlay `yaml:"popover"`
	DatePicker    Overlay `yaml:"datepicker"`
	Menu          Overlay `yaml:"menu"`
	FrameInterval string  `yaml:"frame_interval"`
	LogLevel      string  `yaml:"log_level"`
}

// MarshalYAML writes the frame interval as a duration string.
func (s Settings) MarshalYAML() (any, error) {
	return yamlSettings{
		Tooltip:       s.Tooltip,
		Popover:       s.Popover,
		DatePicker:    s.DatePicker,
		Menu:          s.Menu,
		FrameInterval: s.FrameInterval.String(),
		LogLevel:      s.LogLevel,
	}, nil
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s *Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}

// Save writes s to path as YAML, creating parent directories.
func Save(path string, s *Settings) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
