package cli

import (
	"context"

	"github.com/m-mizutani/leakgate/pkg/infra"
	"github.com/m-mizutani/leakgate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func (x *CLI) statsCommand(opt *scanOptions) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show statistics of the whitelist. Whitelist flags of the root command are used",
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := opt.newWhitelistRepository(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithWhitelist(store)))
			stats, err := uc.Statistics(ctx)
			if err != nil {
				return err
			}
			return stats.Render(x.out, opt.pipelineMode)
		},
	}
}
