package command

import (
	"crypto/rand"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/oklog/ulid/v2"
	"github.com/tigerwill90/keyderive/derive"
	"github.com/urfave/cli/v2"
	"io"
	"time"
)

type deriveCmd struct {
	ui     *ui
	logger hclog.Logger
	opts   []derive.Option
}

func newDeriveCmd(ui *ui, logger hclog.Logger, opts ...derive.Option) *deriveCmd {
	return &deriveCmd{
		ui:     ui,
		logger: logger,
		opts:   opts,
	}
}

func newLogger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "keyderive",
		Level:  hclog.Warn,
		Output: w,
	})
}

func (d *deriveCmd) run() cli.ActionFunc {
	return func(cc *cli.Context) error {
		runID, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
		if err != nil {
			return err
		}

		logger := d.logger.Named("derive").With("run_id", runID.String())
		opts := append([]derive.Option{derive.WithLogger(logger)}, d.opts...)

		res, err := derive.NewPipeline(opts...).Run()
		if err != nil {
			logger.Error("derivation failed", "error", err)
			return fmt.Errorf("derivation failed: %w", err)
		}

		lines, err := res.Lines()
		if err != nil {
			logger.Error("unable to read sealed base key", "error", err)
			return err
		}

		for _, line := range lines {
			d.ui.Token(line.Label, line.Token)
		}
		return nil
	}
}
