package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
)

// FileName is the config file looked up in the working directory.
const FileName = ".selectkit.toml"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Selection SelectionSettings `toml:"selection"`
	List      ListSettings      `toml:"list"`
	SelectBox SelectBoxSettings `toml:"selectbox"`
	Logging   LoggingSettings   `toml:"logging"`
}

// SelectionSettings configures the list's selection behaviour
type SelectionSettings struct {
	Mode         string `toml:"mode"`
	Drag         bool   `toml:"drag"`
	Quick        bool   `toml:"quick"`
	MetaAsCtrl   *bool  `toml:"meta_as_ctrl,omitempty"` // unset: on for macOS only
	AutoScrollMS int    `toml:"auto_scroll_ms"`
}

// ListSettings configures the list widget
type ListSettings struct {
	Orientation string   `toml:"orientation"`
	Height      int      `toml:"height"`
	Items       []string `toml:"items"`
	ItemsFile   string   `toml:"items_file,omitempty"` // YAML, relative to the config file

	// Entries read from ItemsFile, which may carry flags.
	FileItems []domain.ItemSpec `toml:"-"`
}

// ItemSpecs returns the configured items followed by those from the
// items file.
func (l ListSettings) ItemSpecs() []domain.ItemSpec {
	specs := make([]domain.ItemSpec, 0, len(l.Items)+len(l.FileItems))
	for _, label := range l.Items {
		specs = append(specs, domain.ItemSpec{Label: label})
	}
	return append(specs, l.FileItems...)
}

// SelectBoxSettings configures the select box widget
type SelectBoxSettings struct {
	AllowEmpty bool     `toml:"allow_empty"`
	Items      []string `toml:"items"`
}

// LoggingSettings configures the log output
type LoggingSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// itemsFile is the YAML document referenced by list.items_file
type itemsFile struct {
	Items []domain.ItemSpec `yaml:"items"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the file at path
func NewConfigService(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// Load loads the configuration from the service's file. A missing file
// yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg, "")
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg, cs.filePath)
	return cfg, nil
}

func (cs *configService) publishLoaded(cfg *Config, path string) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:  path,
		Mode:  cfg.Selection.Mode,
		Items: len(cfg.List.ItemSpecs()),
	})
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	defaults := *cfg
	cfg.List.Items, cfg.SelectBox.Items = nil, nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.List.Items == nil && cfg.List.ItemsFile == "" {
		cfg.List.Items = defaults.List.Items
	}
	if cfg.SelectBox.Items == nil {
		cfg.SelectBox.Items = defaults.SelectBox.Items
	}

	if cfg.List.ItemsFile != "" {
		itemsPath := cfg.List.ItemsFile
		if !filepath.IsAbs(itemsPath) {
			itemsPath = filepath.Join(filepath.Dir(path), itemsPath)
		}
		specs, err := LoadItems(itemsPath)
		if err != nil {
			return nil, err
		}
		cfg.List.FileItems = specs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadItems reads item specs from a YAML file
func LoadItems(path string) ([]domain.ItemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	var doc itemsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}
	for i, s := range doc.Items {
		if s.Label == "" {
			return nil, fmt.Errorf("items file %s: item %d has no label: %w", path, i, ErrInvalidConfig)
		}
	}
	return doc.Items, nil
}

// Validate checks values that the loader cannot express in types
func (c *Config) Validate() error {
	if _, err := selection.ParseMode(c.Selection.Mode); err != nil {
		return fmt.Errorf("selection.mode: %w: %w", ErrInvalidConfig, err)
	}
	switch c.List.Orientation {
	case "", "vertical", "horizontal":
	default:
		return fmt.Errorf("list.orientation %q: %w", c.List.Orientation, ErrInvalidConfig)
	}
	if c.List.Height < 0 {
		return fmt.Errorf("list.height %d: %w", c.List.Height, ErrInvalidConfig)
	}
	if c.Selection.AutoScrollMS < 0 {
		return fmt.Errorf("selection.auto_scroll_ms %d: %w", c.Selection.AutoScrollMS, ErrInvalidConfig)
	}
	return nil
}

// Options converts the selection settings into Manager options.
func (s SelectionSettings) Options() ([]selection.Option, error) {
	mode, err := selection.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}
	metaAsCtrl := runtime.GOOS == "darwin"
	if s.MetaAsCtrl != nil {
		metaAsCtrl = *s.MetaAsCtrl
	}
	opts := []selection.Option{
		selection.WithMode(mode),
		selection.WithDrag(s.Drag),
		selection.WithQuick(s.Quick),
		selection.WithMetaAsCtrl(metaAsCtrl),
	}
	if s.AutoScrollMS > 0 {
		opts = append(opts, selection.WithAutoScrollInterval(time.Duration(s.AutoScrollMS)*time.Millisecond))
	}
	return opts, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selection: SelectionSettings{
			Mode:         string(selection.ModeMulti),
			Drag:         true,
			AutoScrollMS: int(selection.DefaultAutoScrollInterval / time.Millisecond),
		},
		List: ListSettings{
			Orientation: "vertical",
			Height:      10,
			Items: []string{
				"Apple", "Apricot", "Banana", "Blackberry", "Blueberry", "Cherry",
				"Date", "Elderberry", "Fig", "Grape", "Kiwi", "Lemon", "Mango",
				"Nectarine", "Orange", "Papaya", "Pear", "Plum", "Raspberry", "Strawberry",
			},
		},
		SelectBox: SelectBoxSettings{
			Items: []string{"Small", "Medium", "Large"},
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  "selectkit.log",
		},
	}
}
