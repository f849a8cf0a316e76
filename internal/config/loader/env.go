package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every strokemark environment variable.
const EnvPrefix = "STROKEMARK_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // variable name -> dotted config path
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// includes the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, defaultEnvMapping(prefix))
}

// NewEnvLoaderWithMapping creates a loader with explicit variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{prefix: prefix, mapping: mapping, environ: os.Environ}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "TAG_COLUMN": "output.tag_column",
		prefix + "LOG_LEVEL":  "logging.level",
		prefix + "LOG_FORMAT": "logging.format",
		prefix + "PROJECT":    "project.path",
	}
}

// Load returns the configuration held in the environment. Mapped
// variables go to their configured path; any other prefixed variable
// SECTION_KEY goes to section.key. Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	cfg := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(cfg, path, parseValue(value))
	}
	return cfg, nil
}

// envToPath turns PREFIX_OUTPUT_TAG_COLUMN into output.tag_column.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return name
	}
	return section + "." + key
}

// parseValue converts integers, floats and booleans; anything else stays
// a string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
