package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/paramkit/handler"
	"github.com/dmitrymomot/paramkit/pkg/config"
	"github.com/dmitrymomot/paramkit/pkg/environment"
	"github.com/dmitrymomot/paramkit/pkg/httpserver"
	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/reqparams"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

// Config is loaded from the environment (and a .env file, if present).
// Command-line flags override it.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	RulesFile string `env:"PARAMKIT_RULES_FILE" envDefault:"rules.yaml"`
	HTTP      httpserver.Config
}

type app struct {
	cfg Config
	log *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.NewNop()}

	var rulesFile, logLevel string

	root := &cobra.Command{
		Use:   "paramcheck",
		Short: "Validate request parameters against declarative rules",
		Long: `paramcheck validates query strings, request bodies and headers against
rule sets such as:

  query:
    - '{page:\int},1'
    - '{tag:[a-z]+},optional'

Commands:
  validate - check one parameter source from the command line
  serve    - expose every rule set of a rule file over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("rules") {
				a.cfg.RulesFile = rulesFile
			}
			if cmd.Flags().Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}

			level, err := logger.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = logger.New(
				logger.WithEnvironment(a.cfg.Env, "paramcheck"),
				logger.WithLevel(level),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
			)
			logger.SetAsDefault(a.log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rulesFile, "rules", "", "rule file (default $PARAMKIT_RULES_FILE or rules.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")

	root.AddCommand(newValidateCmd(a), newServeCmd(a), newVersionCmd())
	return root
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (a *app) ruleSets() (reqparams.RuleSets, error) {
	f, err := os.Open(a.cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("open rule file: %w", err)
	}
	defer f.Close()

	return reqparams.DecodeRuleSets(f)
}

// validator builds the validator for one source. Header validators always
// let undeclared headers through.
func (a *app) validator(name string, rules []string, source string) (*reqparams.Validator, error) {
	if len(rules) == 0 {
		sets, err := a.ruleSets()
		if err != nil {
			return nil, err
		}
		var ok bool
		if rules, ok = sets[name]; !ok {
			return nil, fmt.Errorf("%w: %s", reqparams.ErrUnknownRuleSet, name)
		}
	}

	opts := []reqparams.Option{reqparams.WithName(name), reqparams.WithLogger(a.log)}
	if source == handler.SourceHeaders {
		return handler.NewHeaders(rules, opts...)
	}
	return reqparams.New(rules, opts...)
}
