package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typedrills/generics"
	"github.com/marcodamonte/typedrills/internal/config"
	"github.com/marcodamonte/typedrills/internal/log"
)

func newStackCmd() *cobra.Command {
	var peek bool

	c := &cobra.Command{
		Use:   "stack [items...]",
		Short: "Push items onto a Stack[T], then pop until the empty signal",
		Long: "Push items onto a Stack[T], then pop until the empty signal.\n" +
			"All-integer items use Stack[int], anything else Stack[string].",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = viper.GetStringSlice(config.StackDefault)
			}
			out := cmd.OutOrStdout()

			nums, err := atoiAll(args)
			if err == nil {
				log.Debugf("stack: %d int items", len(nums))
				return runStack(out, "Stack[int]", nums, peek)
			}
			log.Debugf("stack: %d string items", len(args))
			return runStack(out, "Stack[string]", args, peek)
		},
	}
	c.Flags().BoolVar(&peek, "peek", false, "peek before every pop")
	return c
}

type stackTrace[T any] struct {
	Pushed []T  `json:"pushed"`
	Peeked []T  `json:"peeked,omitempty"`
	Popped []T  `json:"popped"`
	Empty  bool `json:"empty"`
}

// runStack drives one instantiation of Stack[T]; the same code serves ints
// and strings.
func runStack[T any](out io.Writer, title string, items []T, peek bool) error {
	var s generics.Stack[T]
	trace := stackTrace[T]{Pushed: items}

	if !jsonOutput() {
		section(out, title+" (LIFO)")
	}
	for _, v := range items {
		s.Push(v)
		if !jsonOutput() {
			fmt.Fprintf(out, "  push %v  len=%d\n", v, s.Len())
		}
	}

	for {
		if peek {
			if v, ok := s.Peek(); ok {
				trace.Peeked = append(trace.Peeked, v)
				if !jsonOutput() {
					fmt.Fprintf(out, "  peek → %v\n", v)
				}
			}
		}
		v, ok := s.Pop()
		if !ok {
			break
		}
		trace.Popped = append(trace.Popped, v)
		if !jsonOutput() {
			fmt.Fprintf(out, "  pop  → %v  len=%d\n", v, s.Len())
		}
	}
	trace.Empty = s.IsEmpty()

	if jsonOutput() {
		return printJSON(out, trace)
	}
	fmt.Fprintln(out, "  pop  → (empty)")
	return nil
}

func atoiAll(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
