// Package cmd provides command-line interface for save format inspection.
// This file contains the detect and info commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/hansbonini/xv2save/pkg"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// detectCmd prints the detected format of a save file.
var detectCmd = &cobra.Command{
	Use:   "detect [input_file]",
	Short: "Detect the format of a save file",
	Long: `Detect whether a save file is in PS4 or PC-ready format.

Prints PS4, PC-ready or unknown.

Example:
  xv2save detect SDATA000.DAT`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor, err := pkg.NewSaveProcessor(appConfig)
		if err != nil {
			return err
		}
		info, err := processor.Inspect(args[0])
		if err != nil {
			return err
		}
		fmt.Println(info.Format)
		return nil
	},
}

// infoCmd prints detection details as YAML.
var infoCmd = &cobra.Command{
	Use:   "info [input_file]",
	Short: "Show save file details",
	Long: `Show format, size and marker details of a save file as YAML.

Example:
  xv2save info EditorReady.sav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor, err := pkg.NewSaveProcessor(appConfig)
		if err != nil {
			return err
		}
		info, err := processor.Inspect(args[0])
		if err != nil {
			return err
		}

		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(info); err != nil {
			return fmt.Errorf("failed to encode info: %w", err)
		}
		return encoder.Close()
	},
}

// init registers the detect and info commands.
func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(infoCmd)

	detectCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
	infoCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
}
