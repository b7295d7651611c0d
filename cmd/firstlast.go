package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/typedrills/generics"
)

func newFirstLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first-last",
		Short: "First and Last over int, string and empty slices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			section(out, "First / Last")
			printFirstLast(out, "numbers", []int{1, 2, 3, 4, 5})
			printFirstLast(out, "strings", []string{"apple", "banana", "orange"})
			printFirstLast(out, "empty", []int{})
			return nil
		},
	}
}

func printFirstLast[T any](out io.Writer, name string, s []T) {
	first, okFirst := generics.First(s)
	last, okLast := generics.Last(s)
	fmt.Fprintf(out, "  %-8s first=%s last=%s\n", name, show(first, okFirst), show(last, okLast))
}

// show renders a (value, ok) pair; a missing value prints as "none".
func show[T any](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}
