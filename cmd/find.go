package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/typedrills/generics"
	"github.com/marcodamonte/typedrills/internal/log"
	"github.com/marcodamonte/typedrills/records"
	"github.com/marcodamonte/typedrills/response"
)

var kinds = []string{"users", "products", "tasks"}

// lookupArgs validates `<kind> <id>`.
func lookupArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s <%s> <id>", errUsage, cmd.Name(), strings.Join(kinds, "|"))
	}
	if !lo.Contains(kinds, args[0]) {
		return fmt.Errorf("%w: unknown kind %q, want one of %s", errUsage, args[0], strings.Join(kinds, ", "))
	}
	if _, err := strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("%w: id %q is not an integer", errUsage, args[1])
	}
	return nil
}

func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return kinds, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "find <kind> <id>",
		Short:             "Look a record up with FindByID; a miss prints \"not found\"",
		Args:              lookupArgs,
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[1])
			out := cmd.OutOrStdout()

			switch args[0] {
			case "users":
				return printFound(out, "users", id, generics.FindOption(records.SampleUsers(), id))
			case "products":
				return printFound(out, "products", id, generics.FindOption(records.SampleProducts(), id))
			default:
				return printFound(out, "tasks", id, generics.FindOption(records.SampleTasks(), id))
			}
		},
	}
}

func printFound[T records.Describer](out io.Writer, kind string, id int, found mo.Option[T]) error {
	log.Debugf("find %s #%d: present=%v", kind, id, found.IsPresent())

	if jsonOutput() {
		return printJSON(out, found)
	}
	section(out, fmt.Sprintf("FindByID(%s, %d)", kind, id))
	if v, ok := found.Get(); ok {
		fmt.Fprintf(out, "  %s\n", v.Describe())
	} else {
		fmt.Fprintln(out, "  not found")
	}
	return nil
}

func newResponseCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "response <kind> <id>",
		Short:             "Wrap a lookup in Response[T] and print its JSON envelope",
		Args:              lookupArgs,
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[1])
			out := cmd.OutOrStdout()

			switch args[0] {
			case "users":
				return printJSON(out, lookupResponse(records.SampleUsers(), id, "User not found"))
			case "products":
				return printJSON(out, lookupResponse(records.SampleProducts(), id, "Product not found"))
			default:
				return printJSON(out, lookupResponse(records.SampleTasks(), id, "Task not found"))
			}
		},
	}
}

func lookupResponse[T generics.Identifiable[int]](items []T, id int, miss string) response.Response[T] {
	return response.FromOption(generics.FindOption(items, id), miss)
}
