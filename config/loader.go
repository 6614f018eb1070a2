package config

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Resolver finds configuration files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolveFile returns explicit when set, otherwise the first existing
// standard location for name. It returns "" when nothing is found.
func (cr *Resolver) ResolveFile(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range searchPaths(name) {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func searchPaths(name string) []string {
	paths := make([]string, 0, 8)
	for _, dir := range []string{".", "./config", "..", "../config"} {
		for _, ext := range []string{"yml", "yaml"} {
			paths = append(paths, fmt.Sprintf("%s/%s.%s", dir, name, ext))
		}
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	Optional   bool   // Leave cfg untouched when no file is found
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithOptional makes a missing config file a no-op instead of an error.
func WithOptional() LoaderOption {
	return func(lc *LoaderConfig) { lc.Optional = true }
}

// Load reads the file at path into cfg.
func Load(path string, cfg interface{}) error {
	return LoadConfig("", cfg, WithConfigFile(path))
}

// LoadConfig loads the configuration file for name into cfg.
func LoadConfig(name string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	file := resolver.ResolveFile(name, lc.ConfigFile)

	if file == "" || !lc.FileSystem.Exists(file) {
		if lc.Optional {
			return nil
		}
		if file == "" {
			return fmt.Errorf("config: no configuration file found for %q", name)
		}
		return fmt.Errorf("config: file %s does not exist", file)
	}

	return loadFile(file, cfg)
}

func loadFile(file string, cfg interface{}) error {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", file, err)
	}

	if err := v.Unmarshal(cfg, viper.DecodeHook(DecodeHook())); err != nil {
		return fmt.Errorf("config: decode %s: %w", file, err)
	}
	return nil
}

// DecodeHook returns the mapstructure hooks applied when decoding files.
// Durations accept strings such as "5s" or bare numbers of milliseconds.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		MillisecondsToDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// MillisecondsToDurationHookFunc decodes integer and float values into a
// time.Duration as a number of milliseconds.
func MillisecondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		v := reflect.ValueOf(data)
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(v.Int()) * time.Millisecond, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(v.Uint()) * time.Millisecond, nil
		case reflect.Float32, reflect.Float64:
			return time.Duration(v.Float() * float64(time.Millisecond)), nil
		default:
			return data, nil
		}
	}
}
