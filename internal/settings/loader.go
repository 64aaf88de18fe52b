package settings

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/pkg/fileutil"
)

// Sentinel errors for settings loading.
var (
	// ErrNotFound indicates the canonical settings file does not exist.
	ErrNotFound = errors.New("settings file not found")

	// ErrParse indicates the settings file is not valid JSON.
	ErrParse = errors.New("settings file is not valid JSON")

	// ErrValidation indicates the settings document does not conform to the schema.
	ErrValidation = errors.New("settings document failed schema validation")
)

// The structural schema is data, not code: an embedded JSON Schema evaluated
// against the parsed generic document. Extra fields are allowed everywhere;
// only the shapes of command/args/env are pinned down.
//
//go:embed settings.schema.json
var schemaJSON string

var documentSchema = jsonschema.MustCompileString("settings.schema.json", schemaJSON)

// Load reads, parses, and validates the canonical settings document at path.
//
// It is a pure function of the file content: no caching, each call re-reads
// from disk so external edits between runs are picked up.
//
// Errors:
//   - ErrNotFound if the path does not exist
//   - ErrParse (wrapping the parser message) on malformed JSON
//   - ErrValidation (listing the offending locations) on schema mismatch
func Load(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, err
	}

	return Parse(data)
}

// Parse parses and validates a settings document from raw JSON bytes.
func Parse(data []byte) (*Document, error) {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", err)
	}

	if err := documentSchema.Validate(generic); err != nil {
		return nil, errors.Wrapf(ErrValidation, "%s", formatValidationError(err))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", err)
	}

	return &doc, nil
}

// formatValidationError flattens a jsonschema validation error into a list of
// offending instance locations with their messages.
func formatValidationError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var parts []string
	for _, line := range ve.BasicOutput().Errors {
		// The basic output interleaves branch summaries with leaf causes;
		// only the leaves carry useful messages.
		if line.Error == "" || strings.HasPrefix(line.Error, "doesn't validate with") {
			continue
		}
		loc := line.InstanceLocation
		if loc == "" {
			loc = "#"
		}
		parts = append(parts, loc+": "+line.Error)
	}
	if len(parts) == 0 {
		return ve.Error()
	}
	return strings.Join(parts, "; ")
}
