// Package roster loads the static list of contestants a tip can name.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

// Contestant is a player that can win the contest.
type Contestant struct {
	Name string `yaml:"name" json:"name"`
	Club string `yaml:"club" json:"club"`
}

// Roster is an ordered contestant list.
type Roster struct {
	contestants []Contestant
}

type rosterFile struct {
	Contestants []Contestant `yaml:"contestants"`
}

// Load reads a roster from path, or the built-in roster when path is empty.
func Load(path string) (*Roster, error) {
	if path == "" {
		return Parse(defaultRoster)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML roster document.
func Parse(data []byte) (*Roster, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	return New(f.Contestants)
}

// New validates contestants and builds a Roster.
// Names must be unique because tips and outcomes match on name alone.
func New(contestants []Contestant) (*Roster, error) {
	if len(contestants) == 0 {
		return nil, errors.New("roster is empty")
	}
	seen := make(map[string]struct{}, len(contestants))
	out := make([]Contestant, 0, len(contestants))
	for i, c := range contestants {
		c.Name = strings.TrimSpace(c.Name)
		c.Club = strings.TrimSpace(c.Club)
		if c.Name == "" || c.Club == "" {
			return nil, fmt.Errorf("contestant %d: name and club are required", i+1)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("contestant %q listed twice", c.Name)
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return &Roster{contestants: out}, nil
}

// All returns a copy of the contestants in roster order.
func (r *Roster) All() []Contestant {
	out := make([]Contestant, len(r.contestants))
	copy(out, r.contestants)
	return out
}

// Find looks a contestant up by exact name.
func (r *Roster) Find(name string) (Contestant, bool) {
	for _, c := range r.contestants {
		if c.Name == name {
			return c, true
		}
	}
	return Contestant{}, false
}
