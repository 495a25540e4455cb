package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/evm-deployment-info/internal/cli/render"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// outputFlags are the machine-readable output options of a command
type outputFlags struct {
	json    bool
	csv     bool
	outfile string
}

// format returns the requested machine-readable format, if any
func (o *outputFlags) format() (render.Format, bool) {
	switch {
	case o.json:
		return render.FormatJSON, true
	case o.csv:
		return render.FormatCSV, true
	default:
		return "", false
	}
}

// validate rejects flag combinations before anything is read
func (o *outputFlags) validate() error {
	if o.json && o.csv {
		return &domain.InvalidFlagCombinationError{Flag: "json", Reason: "cannot be combined with --csv"}
	}
	if o.outfile != "" && !o.json && !o.csv {
		return &domain.InvalidFlagCombinationError{Flag: "outfile", Reason: "requires --json or --csv"}
	}
	return nil
}

// write sends machine-readable output to the outfile when one is set, and to
// the command's stdout otherwise.
func (o *outputFlags) write(cmd *cobra.Command, fn func(io.Writer) error) error {
	if o.outfile == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(o.outfile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), render.FormatSuccess(fmt.Sprintf("Wrote %s", o.outfile)))
	return nil
}

// printWarnings reports skipped artifacts on stderr, next to the output
func printWarnings(cmd *cobra.Command, warnings []domain.ArtifactParseWarning) {
	render.RenderWarnings(cmd.ErrOrStderr(), warnings)
}
