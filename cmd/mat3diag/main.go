// Command mat3diag inspects calibration matrices stored as YAML documents.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "mat3diag"

const (
	outputFixed = "fixed"
	outputYAML  = "yaml"
)

var (
	cfgFile string
	logger  = log.New(io.Discard, appName+": ", 0)
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Diagnostics for 3x3 calibration matrices",
	Long: `mat3diag loads 3x3 matrices and 3D vectors from YAML documents,
applies determinant, transpose, Gram-Schmidt orthonormalization and
product operations, and prints the results in fixed-point notation.

Documents list the matrix columns:

  columns:
    - [1, 0, 0]
    - [0, 1, 0]
    - [0, 0, 1]
  vector: [1, 2, 3]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if viper.GetBool("verbose") {
			logger.SetOutput(cmd.ErrOrStderr())
		} else {
			logger.SetOutput(io.Discard)
		}
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Printf("using config file %s", f)
		}
		switch o := viper.GetString("output"); o {
		case outputFixed, outputYAML:
		default:
			return fmt.Errorf("unknown output format %q", o)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print informational messages to stderr")
	rootCmd.PersistentFlags().StringP("output", "o", outputFixed, "output format: fixed or yaml")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		detCmd,
		transposeCmd,
		orthonormalizeCmd,
		mulCmd,
		mulvecCmd,
		printCmd,
		consoleCmd,
	)
}

func initConfig() error {
	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
