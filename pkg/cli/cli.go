package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/leakgate/pkg/cli/config"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/errutil"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	in  io.Reader
	out io.Writer
}

type Option func(*CLI)

// WithInput replaces stdin used for remediation answers
func WithInput(r io.Reader) Option {
	return func(x *CLI) {
		x.in = r
	}
}

// WithOutput replaces stdout used for reports
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		sentryCfg config.Sentry
		scanOpt   scanOptions
	)

	app := &cli.Command{
		Name:  "leakgate",
		Usage: "Scan the whole git history for secrets and gate on unacknowledged findings",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("LEAKGATE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("LEAKGATE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("LEAKGATE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentryCfg.Flags(), scanOpt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return x.runScan(ctx, &scanOpt)
		},
		Commands: []*cli.Command{
			x.statsCommand(&scanOpt),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx := context.Background()
	if err := app.Run(ctx, argv); err != nil {
		// Gate failure is a result, already rendered to the report
		if !errors.Is(err, types.ErrGateFailed) {
			errutil.HandleError(ctx, "fatal error", err)
		}
		return err
	}

	return nil
}
