// Package roster holds the sample superhero roster used by the composite demo.
package roster

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/patterns/pkg/composite"
)

const ErrInvalidRoster errorkit.Error = "roster: invalid roster"

//go:embed heroes.yaml
var heroes []byte

// Heroes returns a fresh copy of the sample hero roster.
func Heroes() (*composite.Container, error) {
	e, err := Decode(heroes)
	if err != nil {
		return nil, err
	}
	root, ok := e.(*composite.Container)
	if !ok {
		return nil, ErrInvalidRoster.F("root %q is not a team", e.Name())
	}
	return root, nil
}

// member is a roster entry.
// An entry with a salary is a single hero, any other entry is a team of members.
type member struct {
	Name    string   `yaml:"name"`
	Salary  *int     `yaml:"salary"`
	Members []member `yaml:"members"`
}

// Decode reads a YAML roster document into a composite tree.
func Decode(data []byte) (composite.Entity, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var root member
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidRoster.F("empty document")
		}
		return nil, ErrInvalidRoster.Wrap(err)
	}
	return root.toEntity()
}

func (m member) toEntity() (composite.Entity, error) {
	if m.Name == "" {
		return nil, ErrInvalidRoster.F("member without a name")
	}
	if m.Salary != nil {
		if len(m.Members) != 0 {
			return nil, ErrInvalidRoster.F("%q has both a salary and members", m.Name)
		}
		return composite.NewLeaf(m.Name, *m.Salary), nil
	}
	team := composite.NewContainer(m.Name)
	for _, sub := range m.Members {
		e, err := sub.toEntity()
		if err != nil {
			return nil, err
		}
		if err := team.Add(e); err != nil {
			return nil, err
		}
	}
	return team, nil
}
