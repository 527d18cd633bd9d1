package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/claimready/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "claimready",
	Short: "Claimready - small-claims readiness diagnostics",
	Long: `Claimready assesses how ready a small-claims case is for filing.

It does not determine whether a claim will succeed, and it is not legal
advice.

Claimready scores the completeness of a claim record, weighs how well the
asserted facts are covered by linked evidence, checks the jurisdictional
gates (monetary cap, category), and surfaces risks, gaps and concrete next
steps - all deterministic and explainable.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Claimready.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("claimready v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.claimready/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.claimready")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CLAIMREADY_*
	viper.SetEnvPrefix("CLAIMREADY")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overridden by the
// config file / environment. Every key the config file renders is honored.
// CLI flags are applied on top by each command.
func loadConfig() model.Config {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring invalid configuration: %v\n", err)
		cfg = model.DefaultConfig()
	}

	cfg.Output.Verbose = cfg.Output.Verbose || viper.GetBool("verbose")
	return cfg
}
