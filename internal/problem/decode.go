package problem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/limaJavier/counting/pkg/counting"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type problemFile struct {
	Problems []map[string]any `mapstructure:"problems"`
}

// LoadFile reads a problem file. Files ending in .yaml or .yml are read as YAML, anything else
// as JSON. The document is either a single problem or {"problems": [...]}.
func LoadFile(file string) ([]Problem, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read problem file: %w", err)
	}

	var document map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &document)
	default:
		// Numbers stay json.Number so that integers above 2^53 keep every digit
		decoder := json.NewDecoder(strings.NewReader(string(bytes)))
		decoder.UseNumber()
		err = decoder.Decode(&document)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse problem file %v: %w", file, err)
	}

	if _, ok := document["problems"]; !ok {
		problem, err := Decode(document)
		if err != nil {
			return nil, err
		}
		return []Problem{problem}, nil
	}

	var batch problemFile
	if err := mapstructure.Decode(document, &batch); err != nil {
		return nil, fmt.Errorf("cannot decode problem file %v: %w", file, err)
	}

	problems := make([]Problem, 0, len(batch.Problems))
	for i, raw := range batch.Problems {
		problem, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", i, err)
		}
		problems = append(problems, problem)
	}
	return problems, nil
}

// Decode converts a generic document into a Problem. Forbidden pairs may be written "a-b" or
// {before: a, after: b}; fixed placements "name:slot" or {person: name, slot: s}. Unknown
// keys are rejected.
func Decode(raw map[string]any) (Problem, error) {
	var problem Problem
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  notationHook,
		ErrorUnused: true,
		Result:      &problem,
	})
	if err != nil {
		return Problem{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Problem{}, fmt.Errorf("cannot decode problem: %w", err)
	}
	return problem, nil
}

var (
	pairType      = reflect.TypeOf(counting.Pair{})
	placementType = reflect.TypeOf(counting.Placement{})
)

func notationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	text, ok := data.(string)
	if from.Kind() != reflect.String || !ok {
		return data, nil
	}

	switch to {
	case pairType:
		return ParsePair(text)
	case placementType:
		return ParsePlacement(text)
	}
	return data, nil
}
