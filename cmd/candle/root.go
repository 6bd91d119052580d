package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)
	viper.SetEnvPrefix("candle")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.candle.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostic output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline-stage timing and counts to stderr")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text or json")

	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evaluateCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".candle")
	}
	// A missing config file is not an error; it just means defaults apply.
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "candle",
	Short: "A tree-walking interpreter for a small expression language",
	Long: `candle exposes the three stages of a tree-walking expression
interpreter as subcommands: tokenize, parse, and evaluate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and translates any cobra-level error
// (bad flags, missing args) into exit code 1. The three subcommands use
// Run rather than RunE and never return an error; they call os.Exit directly with the
// exit codes spec.md §6 defines, since those codes are not "something
// went wrong running the CLI" but an output of the pipeline itself.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !color.NoColor {
			fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
