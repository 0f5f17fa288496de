package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CheckResult is the outcome of one named check.
type CheckResult struct {
	Name string
	OK   bool
}

// CategoryState holds the results of one catalog category, in catalog order.
type CategoryState struct {
	Key    string
	Leaf   bool // serialized as a single boolean instead of a mapping
	Checks []CheckResult
}

// Passed reports whether the named check passed. Unknown names report false.
func (c CategoryState) Passed(name string) bool {
	for _, check := range c.Checks {
		if check.Name == name {
			return check.OK
		}
	}

	return false
}

// Complete reports whether the category has checks and all of them passed.
func (c CategoryState) Complete() bool {
	if len(c.Checks) == 0 {
		return false
	}

	for _, check := range c.Checks {
		if !check.OK {
			return false
		}
	}

	return true
}

// Missing returns the names of failed checks in catalog order.
func (c CategoryState) Missing() []string {
	return c.filter(false)
}

// Present returns the names of passed checks in catalog order.
func (c CategoryState) Present() []string {
	return c.filter(true)
}

func (c CategoryState) filter(ok bool) []string {
	names := make([]string, 0, len(c.Checks))

	for _, check := range c.Checks {
		if check.OK == ok {
			names = append(names, check.Name)
		}
	}

	return names
}

func (c CategoryState) clone() CategoryState {
	checks := make([]CheckResult, len(c.Checks))
	copy(checks, c.Checks)
	c.Checks = checks

	return c
}

// State is the immutable snapshot produced by one detection pass.
type State struct {
	categories []CategoryState
}

// NewState builds a State from category results. The input is copied.
func NewState(categories []CategoryState) State {
	cloned := make([]CategoryState, 0, len(categories))
	for _, category := range categories {
		cloned = append(cloned, category.clone())
	}

	return State{categories: cloned}
}

// Categories returns a copy of the category results in catalog order.
func (s State) Categories() []CategoryState {
	out := make([]CategoryState, 0, len(s.categories))
	for _, category := range s.categories {
		out = append(out, category.clone())
	}

	return out
}

// Category looks up a category by key.
func (s State) Category(key string) (CategoryState, bool) {
	for _, category := range s.categories {
		if category.Key == key {
			return category.clone(), true
		}
	}

	return CategoryState{}, false
}

// MarshalJSON writes categories in catalog order. Leaf categories become a
// boolean, composite categories an object of check name to boolean.
func (s State) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, category := range s.categories {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSONKey(&buf, category.Key); err != nil {
			return nil, err
		}

		if category.Leaf {
			buf.WriteString(strconv.FormatBool(category.Complete()))
			continue
		}

		buf.WriteByte('{')

		for j, check := range category.Checks {
			if j > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSONKey(&buf, check.Name); err != nil {
				return nil, err
			}

			buf.WriteString(strconv.FormatBool(check.OK))
		}

		buf.WriteByte('}')
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}

	buf.Write(encoded)
	buf.WriteByte(':')

	return nil
}

// MarshalYAML builds an ordered mapping node with the same shape as MarshalJSON.
func (s State) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, category := range s.categories {
		key := stringNode(category.Key)

		if category.Leaf {
			root.Content = append(root.Content, key, boolNode(category.Complete()))
			continue
		}

		checks := &yaml.Node{Kind: yaml.MappingNode}
		for _, check := range category.Checks {
			checks.Content = append(checks.Content, stringNode(check.Name), boolNode(check.OK))
		}

		root.Content = append(root.Content, key, checks)
	}

	return root, nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func boolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}
