package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// Format is an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the encoding from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot infer input format of %q: use .json, .yaml or .yml", path)
}

type document struct {
	Branches []string `json:"branches" yaml:"branches"`
	Commits  []commit `json:"commits" yaml:"commits"`
	Links    []link   `json:"links" yaml:"links"`
}

type commit struct {
	Commit int `json:"commit" yaml:"commit"`
	Branch int `json:"branch" yaml:"branch"`
}

type link struct {
	From commit `json:"from" yaml:"from"`
	To   commit `json:"to" yaml:"to"`
}

func toDocument(d *diagram.Diagram) document {
	doc := document{
		Branches: d.Branches,
		Commits:  make([]commit, len(d.Commits)),
		Links:    make([]link, len(d.Links)),
	}
	for i, c := range d.Commits {
		doc.Commits[i] = commit(c)
	}
	for i, l := range d.Links {
		doc.Links[i] = link{From: commit(l.From), To: commit(l.To)}
	}
	return doc
}

func (doc document) diagram() (*diagram.Diagram, error) {
	d := &diagram.Diagram{
		Branches: doc.Branches,
		Commits:  make([]diagram.Commit, len(doc.Commits)),
		Links:    make([]diagram.Link, len(doc.Links)),
	}
	for i, c := range doc.Commits {
		d.Commits[i] = diagram.Commit(c)
	}
	for i, l := range doc.Links {
		d.Links[i] = diagram.Link{From: diagram.Commit(l.From), To: diagram.Commit(l.To)}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
