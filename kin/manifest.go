package kin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative class hierarchy: classes in definition order,
// each with bases and members identified by name and kind. Members carry no
// code; manifests exist to check override declarations.
type Manifest struct {
	Classes []ManifestClass `yaml:"classes"`
}

type ManifestClass struct {
	Name    string           `yaml:"name"`
	Doc     string           `yaml:"doc,omitempty"`
	Bases   []string         `yaml:"bases,omitempty"`
	Members []ManifestMember `yaml:"members,omitempty"`
}

type ManifestMember struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Override bool   `yaml:"override,omitempty"`
	ReadOnly bool   `yaml:"readonly,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
}

// LoadManifest parses and validates a YAML manifest. Unknown fields are
// rejected.
func LoadManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("kin: empty manifest")
		}
		return nil, fmt.Errorf("kin: parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifestFile reads and parses a manifest from disk.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kin: read manifest: %w", err)
	}
	return LoadManifest(data)
}

func (m *Manifest) validate() error {
	if len(m.Classes) == 0 {
		return errors.New("kin: manifest defines no classes")
	}
	seen := make(map[string]struct{}, len(m.Classes))
	for _, mc := range m.Classes {
		if mc.Name == "" {
			return errors.New("kin: manifest class without a name")
		}
		if _, ok := seen[mc.Name]; ok {
			return fmt.Errorf("kin: duplicate class %s in manifest", mc.Name)
		}
		seen[mc.Name] = struct{}{}

		members := make(map[string]struct{}, len(mc.Members))
		for _, mm := range mc.Members {
			if mm.Name == "" {
				return fmt.Errorf("kin: class %s has a member without a name", mc.Name)
			}
			if _, ok := members[mm.Name]; ok {
				return fmt.Errorf("kin: duplicate member %s.%s in manifest", mc.Name, mm.Name)
			}
			members[mm.Name] = struct{}{}
			if _, err := ParseMemberKind(mm.Kind); err != nil {
				return fmt.Errorf("kin: member %s.%s: %w", mc.Name, mm.Name, err)
			}
			if mm.ReadOnly && mm.Kind != "property" {
				return fmt.Errorf("kin: member %s.%s: readonly applies only to properties", mc.Name, mm.Name)
			}
		}
	}
	return nil
}

func (mm ManifestMember) build() (Value, error) {
	kind, err := ParseMemberKind(mm.Kind)
	if err != nil {
		return NewNil(), err
	}

	var member Value
	if kind == KindProperty {
		member = newStubProperty(mm.Name, mm.ReadOnly)
		member.Property().Doc = mm.Doc
	} else {
		member, err = NewStubMember(kind, mm.Name)
		if err != nil {
			return NewNil(), err
		}
		member.Func().Doc = mm.Doc
	}

	if mm.Override {
		return Override(member)
	}
	return member, nil
}

// CheckReport collects per-class construction results for a manifest.
type CheckReport struct {
	Results []CheckResult
}

// CheckResult records one class: Err is nil when construction succeeded.
type CheckResult struct {
	Class string
	Err   error
}

// Failures counts the classes that failed to build.
func (r *CheckReport) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Check builds every manifest class in order against the runtime,
// registering the ones that construct cleanly. Unlike construction itself,
// checking does not stop at the first failure: a class whose base failed
// earlier reports an unknown base and the scan continues.
func (m *Manifest) Check(rt *Runtime) *CheckReport {
	report := &CheckReport{}

	for _, mc := range m.Classes {
		err := m.checkClass(rt, mc)
		report.Results = append(report.Results, CheckResult{Class: mc.Name, Err: err})
	}
	return report
}

func (m *Manifest) checkClass(rt *Runtime, mc ManifestClass) error {
	var bases []*Class
	for _, name := range mc.Bases {
		base, err := resolveBase(rt, name)
		if err != nil {
			return err
		}
		bases = append(bases, base)
	}

	body := NewBody()
	for _, mm := range mc.Members {
		member, err := mm.build()
		if err != nil {
			return err
		}
		body.Set(mm.Name, member)
	}

	cls, err := Define(mc.Name, bases, body)
	if err != nil {
		return err
	}
	cls.Doc = mc.Doc
	return rt.Register(cls)
}

func resolveBase(rt *Runtime, name string) (*Class, error) {
	if cls, ok := rt.LookupClass(name); ok {
		return cls, nil
	}
	if name == "Base" {
		return Base, nil
	}
	return nil, fmt.Errorf("kin: unknown base %q", name)
}
