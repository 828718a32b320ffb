package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/madbook/slid/internal/core/terminal"
	"github.com/madbook/slid/internal/picker"
)

// Rows reserved below the viewport for terminal chrome.
const chromeRows = 2

type PickCmd struct {
	flags *Flags

	// flags
	multiline     bool
	preserveOrder bool
	noNumbers     bool
}

// NewPickCmd creates the default pick action.
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Flags returns the pick flags for registration on the root command.
func (cmd *PickCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "multiline",
			Aliases:     []string{"m"},
			Usage:       "select multiple lines; confirm with 'c'",
			Destination: &cmd.multiline,
		},
		&cli.BoolFlag{
			Name:        "preserve-order",
			Aliases:     []string{"p"},
			Usage:       "emit lines in the order they were selected",
			Destination: &cmd.preserveOrder,
		},
		&cli.BoolFlag{
			Name:        "no-numbers",
			Aliases:     []string{"n"},
			Usage:       "hide line numbers",
			Destination: &cmd.noNumbers,
		},
	}
}

// Run reads the input blob, takes over the controlling terminal, and
// drives a picker session. The confirmed selection is the only thing
// written to stdout.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	multiline := cmd.multiline || cfg.Multiline
	preserveOrder := cmd.preserveOrder || cfg.PreserveOrder
	hideNumbers := cmd.noNumbers || cfg.HideNumbers

	blob, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dev, err := terminal.Open()
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	logger := log.With().Str("component", "picker").Logger()
	logger.Debug().Int("rows", dev.Rows()).Int("cols", dev.Cols()).Msg("terminal acquired")

	store := picker.NewStore(string(blob))

	mode := picker.Positional
	if preserveOrder {
		mode = picker.PreserveOrder
	}
	sel := picker.NewSelection(store, mode)

	rows := dev.Rows() - chromeRows
	view := picker.NewViewport(store, rows)

	save, restore := terminal.Marks(os.Getenv("TERM_PROGRAM"))
	renderer := picker.NewRenderer(dev, store, sel, view, dev.Cols(), hideNumbers, save, restore)

	session := picker.NewSession(store, sel, view, renderer, dev, multiline, logger)

	out, ok, err := session.Run()

	// Leave cooked mode before touching stdout, on every path.
	if cerr := dev.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if ok {
		fmt.Fprintln(os.Stdout, out)
	}
	return nil
}
