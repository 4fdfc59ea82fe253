package config

import (
	"strings"
)

// GenerateConfigContent returns the example configuration with every value
// commented out, ready to be saved as a starting config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetExampleConfigContent())
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers as they are.
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
