// Package matrix provides the data-driven illegal matrix: a declarative table
// of forbidden value pairs across policy dimensions.
package matrix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Relation names used by the request validator. Every forbidden pair must be
// listed explicitly in the matrix document; there is no fallback inference.
const (
	RelationIntentXForm             = "intent_x_form"
	RelationPersonaXForm            = "persona_x_form"
	RelationPersonaXPosture         = "persona_x_commercial_posture"
	RelationDomainXPersona          = "domain_x_persona"
	RelationDepthXChannel           = "depth_x_channel"
	RelationDestinationXPosture     = "destination_x_posture"
	RelationDestinationXDepth       = "destination_x_depth"
	RelationPersonaXModifier        = "persona_x_modifier"
)

// Matrix maps relation name -> left value -> set of forbidden right values.
// It is pure data, loaded once at startup and read-only afterwards.
type Matrix struct {
	relations map[string]map[string]map[string]bool
}

// LoadError represents a malformed or missing matrix document. This is a
// fatal startup error, never a per-request failure.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load illegal matrix %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load illegal matrix %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a matrix document: one map per relation name, each mapping a
// left-hand value to the list of right-hand values it forbids.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(data, path)
}

// Parse parses matrix YAML. Exposed separately so tests and embedded
// documents can bypass the filesystem.
func Parse(data []byte, path string) (*Matrix, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
	}
	if raw == nil {
		return nil, &LoadError{Path: path, Message: "document is empty"}
	}

	relations := make(map[string]map[string]map[string]bool, len(raw))
	for relation, lefts := range raw {
		rel := make(map[string]map[string]bool, len(lefts))
		for left, rights := range lefts {
			set := make(map[string]bool, len(rights))
			for _, r := range rights {
				set[r] = true
			}
			rel[left] = set
		}
		relations[relation] = rel
	}

	return &Matrix{relations: relations}, nil
}

// Disallows reports whether (left, right) is an explicitly forbidden pair
// under the named relation. Unknown relations and unknown left values never
// forbid (open-world default).
func (m *Matrix) Disallows(relation, left, right string) bool {
	lefts, ok := m.relations[relation]
	if !ok {
		return false
	}
	rights, ok := lefts[left]
	if !ok {
		return false
	}
	return rights[right]
}

// Relations returns the relation names present in the matrix.
func (m *Matrix) Relations() []string {
	out := make([]string, 0, len(m.relations))
	for k := range m.relations {
		out = append(out, k)
	}
	return out
}
