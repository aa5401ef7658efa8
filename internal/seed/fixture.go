package seed

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Fixture is the YAML document loaded by the seed tool. Characters refer to
// their homeworld and starship by name.
type Fixture struct {
	Planets    []PlanetFixture    `yaml:"planets"`
	Starships  []StarshipFixture  `yaml:"starships"`
	Characters []CharacterFixture `yaml:"characters"`
	Users      []UserFixture      `yaml:"users"`
}

type PlanetFixture struct {
	Name     string `yaml:"name"`
	Diameter string `yaml:"diameter"`
	Gravity  string `yaml:"gravity"`
}

type StarshipFixture struct {
	Name string `yaml:"name"`
}

type CharacterFixture struct {
	Name      string `yaml:"name"`
	BirthYear string `yaml:"birth_year"`
	Gender    string `yaml:"gender"`
	Homeworld string `yaml:"homeworld"`
	Starship  string `yaml:"starship"`
}

type UserFixture struct {
	UserName string `yaml:"user_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsActive bool   `yaml:"is_active"`
}

// LoadFixture reads and validates a fixture file
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes and validates fixture YAML
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks required fields and that every character reference
// resolves within the fixture
func (f *Fixture) Validate() error {
	planets := make(map[string]bool, len(f.Planets))
	for i, p := range f.Planets {
		if p.Name == "" {
			return fmt.Errorf("planets[%d]: name is required", i)
		}
		planets[p.Name] = true
	}

	starships := make(map[string]bool, len(f.Starships))
	for i, s := range f.Starships {
		if s.Name == "" {
			return fmt.Errorf("starships[%d]: name is required", i)
		}
		starships[s.Name] = true
	}

	for i, c := range f.Characters {
		if c.Name == "" {
			return fmt.Errorf("characters[%d]: name is required", i)
		}
		if !planets[c.Homeworld] {
			return fmt.Errorf("character %q: unknown homeworld %q", c.Name, c.Homeworld)
		}
		if !starships[c.Starship] {
			return fmt.Errorf("character %q: unknown starship %q", c.Name, c.Starship)
		}
	}

	for i, u := range f.Users {
		if u.UserName == "" || u.Email == "" || u.Password == "" {
			return fmt.Errorf("users[%d]: user_name, email and password are required", i)
		}
	}
	return nil
}
