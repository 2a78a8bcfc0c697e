package io

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// ReadJSON decodes and validates a JSON diagram from r. It does not close r.
func ReadJSON(r io.Reader) (*diagram.Diagram, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return doc.diagram()
}

// ReadYAML decodes and validates a YAML diagram from r. It does not close r.
func ReadYAML(r io.Reader) (*diagram.Diagram, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidInput, "decode yaml: empty document")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}
	return doc.diagram()
}

// Read decodes a diagram in the given format.
func Read(r io.Reader, format Format) (*diagram.Diagram, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q", format)
}

// Import reads the diagram file at path, choosing the decoder by extension.
func Import(path string) (*diagram.Diagram, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	d, err := Read(f, format)
	if err != nil {
		return nil, errors.New(errors.GetCode(err), "%s: %s", path, errors.UserMessage(err))
	}
	return d, nil
}
