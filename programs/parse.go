package programs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc string

var ErrUnknownFormat = errors.New("unknown program format")

// ParseCUE decodes a program written in CUE, checked against the program schema
func ParseCUE(filename string, src []byte) (def Definition, err error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({"+schemaSrc+"})", cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return def, err
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return def, err
	}

	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return def, fmt.Errorf("validate %s: %w", filename, err)
	}

	if err := value.Decode(&def); err != nil {
		return def, fmt.Errorf("decode %s: %w", filename, err)
	}
	return def, nil
}

func ParseYAML(filename string, src []byte) (def Definition, err error) {
	if err := yaml.Unmarshal(src, &def); err != nil {
		return def, fmt.Errorf("decode %s: %w", filename, err)
	}
	return def, nil
}

// LoadFile reads a .cue, .yaml or .yml program file
func LoadFile(path string) (def Definition, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return def, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		def, err = ParseCUE(path, content)
	case ".yaml", ".yml":
		def, err = ParseYAML(path, content)
	default:
		return def, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return def, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}
