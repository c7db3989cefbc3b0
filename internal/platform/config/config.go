// internal/platform/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"inspectx/internal/core/domain"
)

// DefaultFile se carga si existe en el directorio actual y no se indicó otro.
const DefaultFile = "inspectx.yaml"

// Variables de entorno reconocidas.
const (
	EnvConfig   = "INSPECTX_CONFIG"
	EnvIgnore   = "INSPECTX_IGNORE"
	EnvWorkers  = "INSPECTX_WORKERS"
	EnvNoColor  = "INSPECTX_NO_COLOR"
	EnvLogLevel = "INSPECTX_LOG_LEVEL"
)

type Config struct {
	// App
	ConfigPath   string
	Workers      int
	LogLevel     string
	PrintVersion bool
	PrintHelp    bool

	// Inspection
	Ignore []string    // nombres exactos o patrones glob
	As     domain.Kind // vacío = clasificación automática
	List   bool
	Values []string

	// Output
	NoColor bool
}

// fileConfig es el formato del fichero YAML. Los punteros distinguen
// "ausente" de "valor cero".
type fileConfig struct {
	Ignore   []string `yaml:"ignore"`
	Workers  *int     `yaml:"workers"`
	NoColor  *bool    `yaml:"no_color"`
	LogLevel string   `yaml:"log_level"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Workers:  4,
		LogLevel: "info",
	}
}

// Load inicializa la configuración: defaults -> YAML -> ENV -> FLAGS
// (flags tienen prioridad). Las listas de ignore se acumulan entre capas.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs, fl := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	// Cargar desde YAML
	cfgPath, explicit := resolveConfigPath(fl.configPath)
	if cfgPath != "" {
		if err := loadFromFile(&cfg, cfgPath, explicit); err != nil {
			return cfg, err
		}
	}

	// Cargar desde ENV
	loadFromEnv(&cfg)

	// Aplicar flags (overrides ENV)
	applyFlags(&cfg, fs, fl)

	normalize(&cfg)

	if err := validate(&cfg, fl.as); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// IgnoreSet construye el conjunto de ignorados a partir de la configuración.
func (c Config) IgnoreSet() *IgnoreSet {
	return NewIgnoreSet(c.Ignore)
}

type flagValues struct {
	configPath string
	ignore     []string
	as         string
	workers    int
	noColor    bool
	list       bool
	logLevel   string
	version    bool
	help       bool
}

func newFlagSet() (*pflag.FlagSet, *flagValues) {
	fl := &flagValues{}
	fs := pflag.NewFlagSet("inspectx", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&fl.configPath, "config", "c", "", "YAML config file (default ./"+DefaultFile+" if present)")
	fs.StringSliceVarP(&fl.ignore, "ignore", "i", nil, "Pass names or glob patterns to skip (repeatable, comma separated)")
	fs.StringVarP(&fl.as, "as", "a", "", "Force the artifact kind: ip, int, string")
	fs.IntVarP(&fl.workers, "workers", "w", 0, "Number of values inspected concurrently")
	fs.BoolVar(&fl.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&fl.list, "list", "l", false, "List inspectors and their passes, then exit")
	fs.StringVar(&fl.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVarP(&fl.version, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&fl.help, "help", "h", false, "Show this help message")

	return fs, fl
}

// resolveConfigPath retorna la ruta a cargar y si fue pedida explícitamente.
func resolveConfigPath(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if v := getenv(EnvConfig, ""); v != "" {
		return v, true
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, false
	}
	return "", false
}

// loadFromFile carga el YAML. Un fichero implícito que desaparece no es error.
func loadFromFile(cfg *Config, p string, explicit bool) error {
	data, err := os.ReadFile(p)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrConfigLoadFailed, p, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, p, err)
	}

	cfg.ConfigPath = p
	cfg.Ignore = append(cfg.Ignore, fc.Ignore...)
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvIgnore, ""); v != "" {
		cfg.Ignore = append(cfg.Ignore, strings.Split(v, ",")...)
	}
	if v := getenv(EnvWorkers, ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv(EnvNoColor, ""); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if v := getenv(EnvLogLevel, ""); v != "" {
		cfg.LogLevel = v
	}
}

// applyFlags copia solo los flags presentes en la línea de comandos.
func applyFlags(cfg *Config, fs *pflag.FlagSet, fl *flagValues) {
	cfg.Ignore = append(cfg.Ignore, fl.ignore...)
	if fs.Changed("workers") {
		cfg.Workers = fl.workers
	}
	if fs.Changed("no-color") {
		cfg.NoColor = fl.noColor
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	cfg.List = fl.list
	cfg.PrintVersion = fl.version
	cfg.PrintHelp = fl.help
	cfg.Values = fs.Args()
}

func normalize(c *Config) {
	if c.Workers < 1 {
		c.Workers = 1
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	seen := make(map[string]struct{}, len(c.Ignore))
	ignore := make([]string, 0, len(c.Ignore))
	for _, e := range c.Ignore {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		ignore = append(ignore, e)
	}
	c.Ignore = ignore
}

func validate(c *Config, as string) error {
	if as != "" {
		k, err := domain.ParseKind(as)
		if err != nil {
			return fmt.Errorf("%w: --as: %w", domain.ErrInvalidConfig, err)
		}
		c.As = k
	}

	for _, e := range c.Ignore {
		if _, err := path.Match(e, ""); err != nil {
			return fmt.Errorf("%w: ignore pattern %q: %v", domain.ErrInvalidConfig, e, err)
		}
	}
	return nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
