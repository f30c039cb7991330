package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/exsd/internal/app"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/zerr"
)

type primeOutput struct {
	domain.PrimeReport

	Notifications []domain.Notification `json:"notifications,omitempty"`
	Metrics       []app.Sample          `json:"metrics,omitempty"`
}

func (c *CLI) newPrimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Load every schema of the project and resolve all element references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Prime(cmd.Context())
			if err != nil {
				return err
			}

			out := primeOutput{PrimeReport: report, Notifications: c.app.Notifications()}
			if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
				if out.Metrics, err = c.app.Metrics(); err != nil {
					return err
				}
			}

			if err := c.emit(cmd, out, func(w io.Writer) { printPrime(w, out) }); err != nil {
				return err
			}
			if failed := report.Failed(); failed > 0 {
				return zerr.With(domain.ErrPrimeFailed, "units", failed)
			}
			return nil
		},
	}
	cmd.Flags().Bool("metrics", false, "Print cache counters after priming")
	return cmd
}

func printPrime(w io.Writer, out primeOutput) {
	for _, u := range out.Units {
		_, _ = fmt.Fprintf(w, "%s %s: %d files, %d invalid, %d refs, %d unresolved [%s]\n",
			u.Kind, u.Name, u.Files, u.Invalid, u.Refs, u.Unresolved, u.Status)
		if u.Error != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", u.Error)
		}
	}
	for _, n := range out.Notifications {
		_, _ = fmt.Fprintf(w, "%s: %s\n", n.Title, n.Message)
	}
	for _, s := range out.Metrics {
		_, _ = fmt.Fprintf(w, "%s %g\n", s.Name, s.Value)
	}
}
