package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/pinfield/internal/config"
	"github.com/iw2rmb/pinfield/internal/logging"
	"github.com/iw2rmb/pinfield/internal/verify"
	"github.com/iw2rmb/pinfield/pinview"
)

var (
	errCanceled        = errors.New("entry canceled")
	errTooManyAttempts = errors.New("too many incorrect attempts")
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the entry field and print the accepted code",
	Long: `Show the entry field. Once every slot is filled the code is checked
against verify.hash (when set); a wrong code marks the field as failed and
clears it. The accepted code is printed to stdout, the UI is drawn on stderr.

Examples:
  # Six digit one-time code, split into two groups
  pinfield-demo run --length 6 --charset numeric --group

  # Masked PIN checked against a hash
  pinfield-demo run --secure --verify-hash "$(pinfield-demo hash 4711)" --length 4`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.Int("length", 0, "number of slots")
	f.String("charset", "", "accepted characters (alphanumeric/numeric/ascii/any)")
	f.String("placeholder", "", "character drawn in empty slots")
	f.Bool("secure", false, "mask entered characters")
	f.Duration("secure-delay", 0, "how long the last typed character stays visible (e.g. 800ms)")
	f.Bool("group", false, "split the slots into two groups")
	f.String("style", "", "slot style (bordered/underline)")
	f.String("verify-hash", "", "bcrypt hash the code is checked against")
	f.Int("max-attempts", 0, "give up after this many wrong codes (0 for unlimited)")

	_ = viper.BindPFlag("pin.length", f.Lookup("length"))
	_ = viper.BindPFlag("pin.charset", f.Lookup("charset"))
	_ = viper.BindPFlag("pin.placeholder", f.Lookup("placeholder"))
	_ = viper.BindPFlag("pin.secure", f.Lookup("secure"))
	_ = viper.BindPFlag("pin.group", f.Lookup("group"))
	_ = viper.BindPFlag("style.variant", f.Lookup("style"))
	_ = viper.BindPFlag("verify.hash", f.Lookup("verify-hash"))
	_ = viper.BindPFlag("verify.max_attempts", f.Lookup("max-attempts"))
}

func runRun(cmd *cobra.Command, args []string) error {
	// The file stores milliseconds, the flag takes a duration.
	if f := cmd.Flags().Lookup("secure-delay"); f != nil && f.Changed {
		d, err := cmd.Flags().GetDuration("secure-delay")
		if err != nil {
			return err
		}
		viper.Set("pin.secure_delay_ms", int(d/time.Millisecond))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.WithSession(uuid.NewString())

	var verifier *verify.Verifier
	if cfg.Verify.Hash != "" {
		verifier, err = verify.New(cfg.Verify.Hash)
		if err != nil {
			return err
		}
	}

	fc, err := cfg.FieldConfig()
	if err != nil {
		return err
	}
	fc.Clipboard = pinview.CommandClipboard{}
	fc.Logger = logger.WithComponent("pinview")

	logger.Info("entry started", "length", fc.Length, "charset", cfg.Pin.Charset, "secure", fc.Secure, "verify", verifier != nil)

	p := tea.NewProgram(newRunModel(fc, verifier, cfg.Verify.MaxAttempts, logger), tea.WithOutput(cmd.ErrOrStderr()))
	if viper.ConfigFileUsed() != "" {
		watchConfig(p, logger)
	}
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run entry field: %w", err)
	}

	res, ok := final.(runModel)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	switch res.outcome {
	case outcomeAccepted:
		fmt.Fprintln(cmd.OutOrStdout(), res.code)
		return nil
	case outcomeLocked:
		return errTooManyAttempts
	default:
		return errCanceled
	}
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if cfg.Logging.File == "" {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, nil
}

// watchConfig re-applies the pin and style sections whenever the config file
// changes. Invalid edits are logged and ignored.
func watchConfig(p *tea.Program, logger *logging.Logger) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "error", err.Error())
			return
		}
		fc, err := cfg.FieldConfig()
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "error", err.Error())
			return
		}
		fc.Clipboard = pinview.CommandClipboard{}
		fc.Logger = logger.WithComponent("pinview")
		logger.Info("config reloaded", "file", e.Name, "op", e.Op.String())
		p.Send(reloadMsg{field: fc})
	})
	viper.WatchConfig()
}
