package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// calculator has no hidden receiver binding: Add always works on the value it
// is called on, whichever way the call is spelled.
type calculator struct {
	Value int
}

func (c calculator) Add(n int) int { return c.Value + n }

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <n>",
		Short: "Method values vs. method expressions on calculator.Add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", errUsage, args[0])
			}
			out := cmd.OutOrStdout()

			c := calculator{Value: 10}
			bound := c.Add             // method value: receiver copied now
			explicit := calculator.Add // method expression: receiver passed per call

			section(out, "Method value vs. method expression")
			fmt.Fprintf(out, "  c.Add(%d)              = %d\n", n, c.Add(n))
			fmt.Fprintf(out, "  bound(%d)              = %d\n", n, bound(n))
			fmt.Fprintf(out, "  calculator.Add(c, %d)  = %d\n", n, explicit(c, n))

			c.Value = 20
			fmt.Fprintln(out, "  after c.Value = 20:")
			fmt.Fprintf(out, "  bound(%d)              = %d\n", n, bound(n))
			fmt.Fprintf(out, "  calculator.Add(c, %d)  = %d\n", n, explicit(c, n))
			return nil
		},
	}
}
