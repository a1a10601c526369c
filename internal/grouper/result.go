package grouper

import (
	"bytes"
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// Result maps marker folders to the changed files that led to them.
// Folders keep first-discovery order and files keep input order.
type Result struct {
	order   []string
	buckets map[string][]string
}

func newResult() *Result {
	return &Result{buckets: make(map[string][]string)}
}

// add appends file to folder's bucket unless it is already there.
func (r *Result) add(folder, file string) {
	files, ok := r.buckets[folder]
	if !ok {
		r.order = append(r.order, folder)
	}
	if slices.Contains(files, file) {
		return
	}
	r.buckets[folder] = append(files, file)
}

// Keys returns the marker folders in discovery order.
func (r *Result) Keys() []string {
	return slices.Clone(r.order)
}

// Files returns the changed files grouped under folder.
func (r *Result) Files(folder string) []string {
	return slices.Clone(r.buckets[folder])
}

// Has reports whether folder was discovered.
func (r *Result) Has(folder string) bool {
	_, ok := r.buckets[folder]
	return ok
}

// Len returns the number of marker folders.
func (r *Result) Len() int {
	return len(r.order)
}

// Map returns an unordered copy of the grouping.
func (r *Result) Map() map[string][]string {
	m := make(map[string][]string, len(r.order))
	for _, folder := range r.order {
		m[folder] = slices.Clone(r.buckets[folder])
	}
	return m
}

// MarshalJSON encodes the grouping as an object whose keys keep discovery order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, folder := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(folder)
		if err != nil {
			return nil, err
		}
		files, err := json.Marshal(r.buckets[folder])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(files)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the grouping as a mapping whose keys keep discovery order.
func (r *Result) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, folder := range r.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: folder}
		value := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, file := range r.buckets[folder] {
			value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: file})
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
