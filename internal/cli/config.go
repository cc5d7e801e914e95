package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
	"github.com/katalvlaran/runpath/runpath"
)

// ErrBadPoint indicates a cell coordinate not in "row,col" form.
var ErrBadPoint = errors.New("cli: point must be \"row,col\"")

// Config is the solver configuration shared by the config file and flags.
// Flags that are set explicitly override values read from the file.
//
// Start and Goal use "row,col". An empty Goal means the bottom-right cell.
type Config struct {
	MinRun    int      `json:"min_run"`
	MaxRun    int      `json:"max_run"`
	Headings  []string `json:"headings"`
	Start     string   `json:"start"`
	Goal      string   `json:"goal"`
	LogLevel  string   `json:"log_level"`
	LogFormat string   `json:"log_format"`
}

// DefaultConfig returns the configuration used when neither file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		MinRun:    runpath.DefaultMinRun,
		MaxRun:    runpath.DefaultMaxRun,
		Headings:  []string{"east", "south"},
		Start:     "0,0",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML file over base. Keys missing from the file keep
// their value from base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("cli: read config: %w", err)
	}
	cfg := base
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("cli: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes case and checks every field that does not need the grid.
func (c *Config) Validate() error {
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.MinRun < 1 || c.MaxRun < c.MinRun {
		return fmt.Errorf("%w: got %d..%d", runpath.ErrBadRunLength, c.MinRun, c.MaxRun)
	}
	if _, err := c.Directions(); err != nil {
		return err
	}
	if _, err := parsePoint(c.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if c.Goal != "" {
		if _, err := parsePoint(c.Goal); err != nil {
			return fmt.Errorf("goal: %w", err)
		}
	}
	return nil
}

// Directions parses Headings.
func (c *Config) Directions() ([]direction.Direction, error) {
	if len(c.Headings) == 0 {
		return nil, runpath.ErrNoInitialDirections
	}
	dirs := make([]direction.Direction, 0, len(c.Headings))
	for _, h := range c.Headings {
		d, err := direction.Parse(h)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// Endpoints resolves Start and Goal against g's dimensions.
func (c *Config) Endpoints(g *costgrid.Grid) (start, goal costgrid.Point, err error) {
	if start, err = parsePoint(c.Start); err != nil {
		return start, goal, err
	}
	if c.Goal == "" {
		return start, costgrid.Point{Row: g.Height - 1, Col: g.Width - 1}, nil
	}
	goal, err = parsePoint(c.Goal)
	return start, goal, err
}

// parsePoint reads "row,col"; surrounding spaces are allowed.
func parsePoint(s string) (costgrid.Point, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return costgrid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return costgrid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return costgrid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	return costgrid.Point{Row: row, Col: col}, nil
}
