package topics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizrush/internal/quiz"
)

// CurrentVersion is written into generated topic files.
const CurrentVersion = "v1.0.0"

// File is a decoded topic file. A bare JSON or YAML array of questions is
// accepted as well as the envelope form.
type File struct {
	Version   string          `json:"version,omitempty" yaml:"version,omitempty"`
	Title     string          `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []quiz.Question `json:"questions" yaml:"questions"`
}

const topicSchema = `{
  "$defs": {
    "question": {
      "type": "object",
      "required": ["question", "options"],
      "properties": {
        "question": {"type": "string", "minLength": 1},
        "options": {"type": "array", "items": {"type": "string"}},
        "imageUrl": {"type": "string"}
      }
    },
    "questions": {"type": "array", "items": {"$ref": "#/$defs/question"}}
  },
  "oneOf": [
    {"$ref": "#/$defs/questions"},
    {
      "type": "object",
      "required": ["questions"],
      "properties": {
        "version": {"type": "string"},
        "title": {"type": "string"},
        "questions": {"$ref": "#/$defs/questions"}
      }
    }
  ]
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(topicSchema))
	if err != nil {
		return nil, fmt.Errorf("parse topic schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://topic.json", doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://topic.json")
})

// IsTopicFile reports whether name has a topic file extension.
func IsTopicFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses and validates a topic file. The format is chosen by the
// extension of name. Questions with too few options are kept; filtering
// happens at load time.
func Decode(name string, data []byte) (*File, error) {
	normalized, err := normalize(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTopicFile, name, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTopicFile, name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTopicFile, name, err)
	}

	var f File
	if bytes.HasPrefix(bytes.TrimSpace(normalized), []byte("[")) {
		if err := json.Unmarshal(normalized, &f.Questions); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTopicFile, name, err)
		}
	} else if err := json.Unmarshal(normalized, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTopicFile, name, err)
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &f, nil
}

// Encode renders f as indented JSON or YAML, chosen by the extension of name.
func Encode(name string, f *File) ([]byte, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Marshal(f)
	default:
		out, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
}

// normalize turns YAML input into JSON so one schema covers both formats.
func normalize(name string, data []byte) ([]byte, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("malformed JSON")
		}
		return data, nil
	}
}

// checkVersion accepts an empty version or any v1.x.y release. A missing
// "v" prefix is tolerated.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, semver.Major(CurrentVersion))
	}
	return nil
}
