package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gerber "github.com/MakerPnP/gerber-types"
	"github.com/MakerPnP/gerber-types/configurator"
)

// configuration base
var cfg = newConfig()

func newConfig() *viper.Viper {
	v := viper.New()
	configurator.SetDefaults(v)
	return v
}

var rootCmd = &cobra.Command{
	Use:   "gerbergen",
	Short: "Gerber RS-274X file generator",
	Long:  "Gerbergen emits Gerber (RS-274X) image files, either from built-in specification examples or from a YAML job description.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(twoBoxesCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(buildCmd)
}

func initConfig() {
	if err := configurator.ProcessConfigFile(cfg); err != nil {
		// no config file means built-in defaults
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "configuration file error:", err)
		}
	}
}

// emit serializes the command stream to the file named by --output, or to
// stdout when the flag is empty.
func emit(cmd *cobra.Command, commands gerber.Commands) error {
	name, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if name == "" {
		name = cfg.GetString(configurator.CfgOutputFile)
	}
	var w io.Writer = os.Stdout
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return commands.Serialize(w)
}

func generationSoftware() (vendor, application, version string) {
	return cfg.GetString(configurator.CfgSoftwareVendor),
		cfg.GetString(configurator.CfgSoftwareApplication),
		cfg.GetString(configurator.CfgSoftwareVersion)
}
