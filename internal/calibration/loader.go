package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidArtifact indicates the calibration artifact failed schema or
// semantic validation.
type ErrInvalidArtifact struct {
	Err error
}

func (e *ErrInvalidArtifact) Error() string {
	return fmt.Sprintf("invalid calibration artifact: %v", e.Err)
}

func (e *ErrInvalidArtifact) Unwrap() error { return e.Err }

// artifact is the on-disk JSON form of a fitted calibration model plus its
// threshold configuration.
type artifact struct {
	Version     string    `json:"version"`
	SampleCount int       `json:"sample_count"`
	PreECE      float64   `json:"pre_ece"`
	PostECE     float64   `json:"post_ece"`
	Raw         []float64 `json:"raw"`
	Calibrated  []float64 `json:"calibrated"`

	MaxConfidence   *float64 `json:"max_confidence,omitempty"`
	HighThreshold   *float64 `json:"high_threshold,omitempty"`
	MediumThreshold *float64 `json:"medium_threshold,omitempty"`
}

// artifactSchema validates the structural shape of the artifact before
// decoding. Semantic checks (monotonicity) happen after.
var artifactSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "sample_count", "raw", "calibrated"},
	"properties": map[string]any{
		"version":      map[string]any{"type": "string", "minLength": 1},
		"sample_count": map[string]any{"type": "integer", "minimum": 0},
		"pre_ece":      map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"post_ece":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"raw": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"calibrated": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"max_confidence":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"high_threshold":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"medium_threshold": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
	},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func compiledArtifactSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://calibration-artifact.json", artifactSchema); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://calibration-artifact.json")
	})
	return compiledSchema, compileSchemaError
}

// ParseArtifact validates and decodes a calibration artifact, returning the
// model and the config with any artifact-supplied thresholds applied over
// the defaults.
func ParseArtifact(data []byte) (*Model, Config, error) {
	cfg := DefaultConfig()

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, cfg, &ErrInvalidArtifact{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledArtifactSchema()
	if err != nil {
		return nil, cfg, fmt.Errorf("compile artifact schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, cfg, &ErrInvalidArtifact{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, cfg, &ErrInvalidArtifact{Err: err}
	}

	if len(art.Raw) != len(art.Calibrated) {
		return nil, cfg, &ErrInvalidArtifact{
			Err: fmt.Errorf("raw has %d knots, calibrated has %d", len(art.Raw), len(art.Calibrated)),
		}
	}
	for i := 1; i < len(art.Raw); i++ {
		if art.Raw[i] <= art.Raw[i-1] {
			return nil, cfg, &ErrInvalidArtifact{
				Err: fmt.Errorf("raw knots not strictly ascending at index %d", i),
			}
		}
		if art.Calibrated[i] < art.Calibrated[i-1] {
			return nil, cfg, &ErrInvalidArtifact{
				Err: fmt.Errorf("calibrated values not monotonic at index %d", i),
			}
		}
	}

	if art.MaxConfidence != nil {
		cfg.MaxConfidence = *art.MaxConfidence
	}
	if art.HighThreshold != nil {
		cfg.HighThreshold = *art.HighThreshold
	}
	if art.MediumThreshold != nil {
		cfg.MediumThreshold = *art.MediumThreshold
	}

	model := &Model{
		Version:     art.Version,
		Raw:         art.Raw,
		Calibrated:  art.Calibrated,
		SampleCount: art.SampleCount,
		PreECE:      art.PreECE,
		PostECE:     art.PostECE,
	}
	return model, cfg, nil
}

// LoadArtifact reads and parses a calibration artifact from disk.
func LoadArtifact(path string) (*Model, Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DefaultConfig(), fmt.Errorf("read calibration artifact: %w", err)
	}
	return ParseArtifact(data)
}
