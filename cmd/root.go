// Package cmd provides command-line interface functionality for xv2save.
// xv2save converts Dragon Ball Xenoverse 2 save files between the PS4
// layout and the PC-ready layout used by PC save editors.
package cmd

import (
	"os"

	"github.com/hansbonini/xv2save/pkg"
	"github.com/hansbonini/xv2save/pkg/common"
	"github.com/spf13/cobra"
)

var (
	configFile string
	appConfig  *pkg.Config
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the xv2save application.
var rootCmd = &cobra.Command{
	Use:   "xv2save",
	Short: "Convert Xenoverse 2 saves between PS4 and PC formats",
	Long: `xv2save - Converts Dragon Ball Xenoverse 2 save files between the PS4
layout (SDATA000.DAT) and the PC-ready layout used by PC save editors.

Currently supports:
  - PS4 to PC-ready conversion (EditorReady.sav)
  - PC-ready to PS4 conversion (SDATA000.DAT)
  - Format auto-detection
  - Leftovers sidecar files for data that does not fit the PC-ready layout

Examples:
  xv2save convert SDATA000.DAT
  xv2save convert EditorReady.sav pctops4
  xv2save convert -v --report report.yaml SDATA000.DAT ps4topc
  xv2save detect SDATA000.DAT
  xv2save info EditorReady.sav

Use 'xv2save [command] --help' for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pkg.LoadConfig(configFile)
		if err != nil {
			return err
		}
		if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
			return err
		}
		common.SetVerboseMode(cfg.Verbose)
		appConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command with flags and configuration settings.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
}
