package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/physq/pkg/errors"
)

// DefaultsContent returns the embedded defaults file verbatim.
func DefaultsContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent returns the defaults with every value commented out,
// ready to be written as a starter config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// Encode renders cfg as TOML, the effective configuration after layering.
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// commentOutConfigValues comments out assignment lines, leaving blank
// lines, comments and section headers alone.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		default:
			line = "# " + line
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
