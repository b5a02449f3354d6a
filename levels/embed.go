package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

// Entry is one level of the catalog. Generated levels only need a seed and a
// difficulty; Platforms are placed by hand on top of (or instead of) the
// generated field.
type Entry struct {
	Name       string         `yaml:"name"`
	Seed       uint64         `yaml:"seed"`
	Difficulty int            `yaml:"difficulty"`
	Generate   *bool          `yaml:"generate"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Goal       *GoalSpec      `yaml:"goal"`
}

// GoalSpec places the win point by hand. Radius and SafeDistance fall back
// to the defaults when zero.
type GoalSpec struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Radius       float64 `yaml:"radius"`
	SafeDistance float64 `yaml:"safe_distance"`
}

type PlatformSpec struct {
	Shape           string  `yaml:"shape"`
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Radius          float64 `yaml:"radius"`
	ZOrder          int     `yaml:"z"`
	Rotation        float64 `yaml:"rotation"`
	AngularVelocity float64 `yaml:"angular_velocity"`
	LinearX         float64 `yaml:"linear_x"`
	LinearY         float64 `yaml:"linear_y"`
}

type Catalog struct {
	Levels []Entry `yaml:"levels"`
}

func LoadCatalog() (*Catalog, error) {
	data, err := fs.ReadFile(LevelsFS, "levels.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal catalog: %w", err)
	}
	for i := range c.Levels {
		if c.Levels[i].Name == "" {
			c.Levels[i].Name = fmt.Sprintf("level-%d", i+1)
		}
	}
	return &c, nil
}

// Find looks a level up by name or by 1-based index. An empty name is the
// first level.
func (c *Catalog) Find(name string) (Entry, error) {
	if len(c.Levels) == 0 {
		return Entry{}, fmt.Errorf("%w: catalog is empty", ErrUnknownLevel)
	}
	if name == "" {
		return c.Levels[0], nil
	}
	for _, e := range c.Levels {
		if e.Name == name {
			return e, nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(c.Levels) {
		return c.Levels[n-1], nil
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
