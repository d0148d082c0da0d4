package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vlanadm/vlanadm/internal/config"
)

// WriteFile writes the configuration to a YAML file with a
// descriptive header comment.
func WriteFile(file *config.File, outputPath string) error {
	yamlBytes, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# vlanadm network configuration
# Generated by: vlanadm init
# Generated at: %s
#
# Usage:
#   vlanadm create bridge -c %s
#   vlanadm create localnet -c %s
#   vlanadm delete -c %s
#
# Individual flags override values from this file.
`, time.Now().Format(time.RFC3339), outputPath, outputPath, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
