package handlers

import (
	"context"
	"fmt"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/config/wizard"
	"github.com/vlanadm/vlanadm/internal/util/labels"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// writeConfigFile writes the config to a file.
	writeConfigFile = wizard.WriteFile
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	file := result.ToFile()

	if err := writeConfigFile(file, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, file)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("vlanadm - VLAN network attachments for Kubernetes")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("This wizard creates a defaults file for bulk attachment jobs.")
	fmt.Println("Any flag given on the command line overrides a file value.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, file *config.File) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Network Summary")
	fmt.Println("---------------")
	fmt.Printf("  Prefix:    %s\n", file.Prefix)
	fmt.Printf("  Kind:      %s\n", file.Kind)
	fmt.Printf("  Namespace: %s\n", file.Namespace)
	if file.Range != nil {
		fmt.Printf("  Range:     %d-%d (%d attachments)\n", file.Range.Start, file.Range.End, file.Range.End-file.Range.Start+1)
	}
	if file.Kind == config.KindBridge {
		fmt.Printf("  Bridge:    %s\n", file.Bridge)
	}
	if file.MTU != 0 {
		fmt.Printf("  MTU:       %d\n", file.MTU)
	}
	if len(file.Labels) > 0 {
		fmt.Printf("  Labels:    %s\n", labels.Format(file.Labels))
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Preview the manifests:")
	fmt.Printf("     vlanadm create %s -c %s --dry-run\n", file.Kind, outputPath)
	fmt.Println()
	fmt.Println("  3. Create the attachments:")
	fmt.Printf("     vlanadm create %s -c %s\n", file.Kind, outputPath)
	fmt.Println()
}
