// Command spacetime is the CLI front end for the spacetime algebra
// library: one-off products, the full Cayley table, multivector
// pipelines, calculation files and an interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spacetime/logger"
)

var rootCmd = &cobra.Command{
	Use:   "spacetime",
	Short: "Symbolic products in the 4D spacetime algebra",
	Long: "spacetime computes exact symbolic products, conjugates and quotients\n" +
		"of directed units and multivectors in a fixed 16-element graded algebra.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.Init(verbose || viper.GetBool("verbose"))
	},
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .spacetime.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".spacetime")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("repl.prompt", "ar> ")
	viper.SetDefault("repl.simplify", true)

	viper.SetEnvPrefix("SPACETIME")
	viper.AutomaticEnv()

	// Missing config files are fine; defaults apply.
	_ = viper.ReadInConfig()
}
