package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/unipick/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// InvalidSetEntries holds config-file character entries that could not
	// be parsed; they are dropped from the set and reported via tracing.
	InvalidSetEntries []string
	Flags             map[string]string
	Args              []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth   = "UNIPICK_WIDTH"
	envHeight  = "UNIPICK_HEIGHT"
	envStore   = "UNIPICK_STORE"
	envConfig  = "UNIPICK_CONFIG"
	envMode    = "UNIPICK_MODE"
	envCopy    = "UNIPICK_COPY"
	envHex     = "UNIPICK_HEX"
	envTrace   = "UNIPICK_TRACE"
	envLogFile = "UNIPICK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("unipick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	storePath := fs.String("store", envOrDefault(env, envStore, ""), "path to the settings database")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to the configuration file")
	mode := fs.String("mode", envOrDefault(env, envMode, ""), "initial input mode (HEX, NAME or EMOTICONS; overrides the saved mode)")
	copyChoice := fs.Bool("copy", envOrBool(env, envCopy, false), "copy the chosen character to the clipboard")
	printHex := fs.Bool("hex", envOrBool(env, envHex, false), "print the chosen codepoint in hex instead of the character")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	file, err := loadFile(*configPath)
	if err != nil {
		return Config{}, err
	}
	defaultSet, invalid := parseCharList(file.DefaultSet)

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			StorePath:  *storePath,
			Mode:       *mode,
			Copy:       *copyChoice,
			Hex:        *printHex,
			DefaultSet: defaultSet,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		InvalidSetEntries: invalid,
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"store":   *storePath,
			"config":  *configPath,
			"mode":    *mode,
			"copy":    strconv.FormatBool(*copyChoice),
			"hex":     strconv.FormatBool(*printHex),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// fileConfig is the YAML shape of the optional configuration file. Each
// default_set entry is either a literal character or a codepoint written as
// U+XXXX or 0xXXXX.
type fileConfig struct {
	DefaultSet []string `yaml:"default_set"`
}

func loadFile(path string) (fileConfig, error) {
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unipick", "config.yaml")
}

// parseCharList turns config-file entries into codepoints, returning the
// entries it had to drop.
func parseCharList(entries []string) ([]rune, []string) {
	var set []rune
	var invalid []string
	for _, entry := range entries {
		cp, ok := parseCharEntry(entry)
		if !ok {
			invalid = append(invalid, entry)
			continue
		}
		set = append(set, cp)
	}
	return set, invalid
}

func parseCharEntry(entry string) (rune, bool) {
	trimmed := strings.TrimSpace(entry)
	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"u+", "0x"} {
		if strings.HasPrefix(lower, prefix) {
			value, err := strconv.ParseUint(lower[len(prefix):], 16, 32)
			if err != nil || !utf8.ValidRune(rune(value)) {
				return 0, false
			}
			return rune(value), true
		}
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		cp, _ := utf8.DecodeRuneInString(trimmed)
		return cp, true
	}
	return 0, false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	switch cfg.App.Mode {
	case "", "HEX", "NAME", "EMOTICONS":
		return nil
	}
	return fmt.Errorf("unknown mode %q (want HEX, NAME or EMOTICONS)", cfg.App.Mode)
}
