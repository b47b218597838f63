package command

import (
	"github.com/tigerwill90/keyderive/derive"
	"github.com/urfave/cli/v2"
	"io"
	"os"
)

func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer, opts ...derive.Option) int {
	ui := newUi(stdout, stderr)

	app := &cli.App{
		Name:        "keyderive",
		Usage:       "derive the key hierarchy of the built-in passphrase",
		Description: "Derives a base key with Argon2id and four subkeys with keyed BLAKE2b, then prints them as tokens",
		Version:     "v0.0.0",
		Writer:      stdout,
		ErrWriter:   stderr,
		Action:      newDeriveCmd(ui, newLogger(stderr), opts...).run(),
	}

	if err := app.Run(args); err != nil {
		ui.Errorf("%s\n", err)
		return 1
	}

	return 0
}
