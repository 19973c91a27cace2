// Package cmd provides command-line interface for save conversion.
// This file contains the convert command that turns PS4 saves into
// PC-ready saves and back.
package cmd

import (
	"fmt"

	"github.com/hansbonini/xv2save/pkg"
	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/spf13/cobra"
)

// convertCmd converts a save file, detecting its format unless a mode is given.
var convertCmd = &cobra.Command{
	Use:   "convert [input_file] [mode]",
	Short: "Convert a save file between PS4 and PC-ready formats",
	Long: `Convert a Xenoverse 2 save file between PS4 and PC-ready formats.

Modes:
  auto      Detect the input format (default)
  ps4topc   PS4 save ('#SAV' at 0x20 and 0xA0) to PC-ready
  pctops4   PC-ready save (marker at 0x08) to PS4

Output:
  - EditorReady.sav or SDATA000.DAT next to the input (or in --output-dir)
  - <input>.leftovers.dec when PS4 data does not fit the PC-ready layout
  - Optional YAML report with SHA-1 and BLAKE3 digests

Examples:
  xv2save convert SDATA000.DAT
  xv2save convert EditorReady.sav pctops4
  xv2save convert -o ./out --report report.yaml SDATA000.DAT`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{string(pkg.ModeAuto), string(pkg.ModePS4ToPC), string(pkg.ModePCToPS4)},
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		modeName := ""
		if len(args) > 1 {
			modeName = args[1]
		}
		mode, err := pkg.ParseMode(modeName)
		if err != nil {
			return err
		}

		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return fmt.Errorf("error getting output-dir flag: %w", err)
		}
		reportFile, err := cmd.Flags().GetString("report")
		if err != nil {
			return fmt.Errorf("error getting report flag: %w", err)
		}

		processor, err := pkg.NewSaveProcessor(appConfig)
		if err != nil {
			return err
		}

		fmt.Printf("Processing save file: %s (%s)\n", inputFile, mode)

		report, err := processor.Convert(inputFile, mode, outputDir)
		if err != nil {
			kind := common.KindOf(err)
			if kind == "" {
				kind = common.KindIOFailure
			}
			common.LogError(common.ErrConversionFailed, inputFile, kind)
			return err
		}

		fmt.Printf("%s → %s\n", report.Direction, report.Output)
		fmt.Printf("Input  SHA1: %s\n", report.InputSHA1)
		fmt.Printf("Output SHA1: %s\n", report.OutputSHA1)
		if report.Leftovers != "" {
			fmt.Printf("Leftovers: %s (0x%X bytes)\n", report.Leftovers, report.LeftoversSize)
		}

		if reportFile != "" {
			if err := report.WriteFile(reportFile); err != nil {
				return err
			}
		}
		return nil
	},
}

// init initializes the convert command with its flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
	convertCmd.Flags().StringP("output-dir", "o", "", "Directory for the converted file (default: input directory)")
	convertCmd.Flags().StringP("report", "r", "", "Write a YAML conversion report to this file")
	convertCmd.Flags().String("leftovers-policy", "", "Missing leftovers handling: fallback or strict")
	convertCmd.Flags().Bool("compress-leftovers", false, "Write leftovers sidecars zstd-compressed")
}
