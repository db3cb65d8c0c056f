package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/pinfield/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pinfield-demo",
	Short: "Segmented PIN and one-time-code entry in the terminal",
	Long: `pinfield-demo shows a fixed-length code entry field: one slot per
character, charset filtering, paste, secure masking with a short reveal,
and optional verification against a bcrypt hash.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/pinfield/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug/info/warn/error)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PINFIELD")
	// e.g., PINFIELD_PIN_LENGTH for pin.length
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
