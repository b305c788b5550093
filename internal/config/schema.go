package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Dotted key path (e.g., "changelog.placement")
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"tag_prefix": {
		Path:        "tag_prefix",
		Type:        TypeString,
		Description: "Prefix prepended to versions to form tag names",
		Default:     "v",
	},
	"branch": {
		Path:        "branch",
		Type:        TypeString,
		Description: "Release branch",
		Default:     "main",
	},
	"remote": {
		Path:        "remote",
		Type:        TypeString,
		Description: "Remote the release is pushed to",
		Default:     "origin",
	},
	"manifest": {
		Path:        "manifest",
		Type:        TypeString,
		Description: "File holding the current version (package.json or VERSION)",
		Default:     "package.json",
	},
	"changelog.file": {
		Path:        "changelog.file",
		Type:        TypeString,
		Description: "Changelog file releases are written to",
		Default:     "CHANGELOG.md",
	},
	"changelog.title": {
		Path:        "changelog.title",
		Type:        TypeString,
		Description: "Title line written at the top of a new changelog",
		Default:     "# Changelog",
	},
	"changelog.section_order": {
		Path:          "changelog.section_order",
		Type:          TypeEnum,
		AllowedValues: []string{"first-seen", "canonical"},
		Description:   "Order of changelog sections",
		Default:       "first-seen",
	},
	"changelog.placement": {
		Path:          "changelog.placement",
		Type:          TypeEnum,
		AllowedValues: []string{"append", "prepend"},
		Description:   "Where new releases go in an existing changelog",
		Default:       "append",
	},
	"release.publish": {
		Path:        "release.publish",
		Type:        TypeBool,
		Description: "Run the publish command after tagging",
		Default:     true,
	},
	"release.publish_cmd": {
		Path:        "release.publish_cmd",
		Type:        TypeString,
		Description: "Publish command, split with shell quoting rules",
		Default:     "npm publish",
	},
	"release.github_release": {
		Path:        "release.github_release",
		Type:        TypeBool,
		Description: "Create a GitHub release with the gh CLI",
		Default:     true,
	},
	"release.commit_message": {
		Path:        "release.commit_message",
		Type:        TypeString,
		Description: "Release commit message template",
		Default:     "chore(release): {{.Version}}",
	},
	"lint.max_header_length": {
		Path:        "lint.max_header_length",
		Type:        TypeInt,
		Description: "Header length above which lint warns (20-200)",
		Default:     72,
	},
	"lint.allow_unknown_types": {
		Path:        "lint.allow_unknown_types",
		Type:        TypeBool,
		Description: "Accept commit types outside the conventional set",
		Default:     false,
	},
	"migration.line_in_the_sand": {
		Path:        "migration.line_in_the_sand",
		Type:        TypeString,
		Description: "Commit hash before which history is not enforced",
		Default:     "",
	},
	"skip_confirmations": {
		Path:        "skip_confirmations",
		Type:        TypeBool,
		Description: "Skip confirmation prompts",
		Default:     false,
	},
}

// SortedKeys returns the known key paths in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after type inference and validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
// Returns the parsed value or an error with details about what's wrong.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

// validateAgainstSchema validates a value against a specific schema.
func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		return parseBoolValue(value)
	case TypeInt:
		return parseIntValue(value)
	case TypeEnum:
		return parseEnumValue(schema, value)
	case TypeString:
		return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}

// parseBoolValue parses and validates a boolean value.
func parseBoolValue(value string) (ParsedValue, error) {
	switch strings.ToLower(value) {
	case "true":
		return ParsedValue{Raw: value, Parsed: true, Type: TypeBool}, nil
	case "false":
		return ParsedValue{Raw: value, Parsed: false, Type: TypeBool}, nil
	default:
		return ParsedValue{}, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	}
}

// parseIntValue parses and validates an integer value.
func parseIntValue(value string) (ParsedValue, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return ParsedValue{}, fmt.Errorf("invalid integer: %q", value)
	}
	return ParsedValue{Raw: value, Parsed: n, Type: TypeInt}, nil
}

// parseEnumValue validates a value against allowed enum options.
func parseEnumValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	for _, allowed := range schema.AllowedValues {
		if value == allowed {
			return ParsedValue{Raw: value, Parsed: value, Type: TypeEnum}, nil
		}
	}
	return ParsedValue{}, fmt.Errorf(
		"invalid value: %q (valid options: %s)",
		value,
		strings.Join(schema.AllowedValues, ", "),
	)
}
