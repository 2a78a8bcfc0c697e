package io

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// WriteJSON encodes d as indented JSON. The output can be read back with
// [ReadJSON].
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(d)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode json")
	}
	return nil
}

// WriteYAML encodes d as YAML. The output can be read back with [ReadYAML].
func WriteYAML(d *diagram.Diagram, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(d)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode yaml")
	}
	return nil
}

// Write encodes d in the given format.
func Write(d *diagram.Diagram, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(d, w)
	case FormatYAML:
		return WriteYAML(d, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
}

// Export writes d to path, choosing the encoder by extension.
func Export(d *diagram.Diagram, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, func(w io.Writer) error {
		return Write(d, w, format)
	})
}
