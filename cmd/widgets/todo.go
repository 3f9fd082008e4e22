package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/h0rv/widgets/internal/domain"
	"github.com/h0rv/widgets/internal/store"
)

func newTodoCmd(f *flags) *cobra.Command {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list without the TUI",
	}

	// withStore runs fn against the loaded store and reports persistence failures.
	withStore := func(fn func(cmd *cobra.Command, s *store.Store, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			env, err := setup(f)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := fn(cmd, env.store, args); err != nil {
				return err
			}
			if err := env.store.LastError(); err != nil {
				return fmt.Errorf("failed to save: %w", err)
			}
			return nil
		}
	}

	var filterFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the list",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, s *store.Store, _ []string) error {
			filter, err := domain.ParseFilter(filterFlag)
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), s.FilteredView(filter))
			active, completed := s.Counts()
			fmt.Fprintf(cmd.OutOrStdout(), "%d left, %d completed\n", active, completed)
			return nil
		}),
	}
	listCmd.Flags().StringVar(&filterFlag, "filter", "all", "Which items to show: all, active or completed.")

	addCmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Append an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: withStore(func(cmd *cobra.Command, s *store.Store, args []string) error {
			item, ok := s.Add(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("todo text cannot be empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), item.ID)
			return nil
		}),
	}

	editCmd := &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace an item's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: withStore(func(_ *cobra.Command, s *store.Store, args []string) error {
			if _, err := s.Get(args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			text := strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("todo text cannot be empty")
			}
			// Unchanged text is not an error
			s.Edit(args[0], text)
			return nil
		}),
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an item between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(_ *cobra.Command, s *store.Store, args []string) error {
			if !s.Toggle(args[0]) {
				return fmt.Errorf("%s: %w", args[0], store.ErrItemNotFound)
			}
			return nil
		}),
	}

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: withStore(func(_ *cobra.Command, s *store.Store, args []string) error {
			// Removing a missing id is not an error
			s.Remove(args[0])
			return nil
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed item",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, s *store.Store, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", s.ClearCompleted())
			return nil
		}),
	}

	moveCmd := &cobra.Command{
		Use:   "move <id...>",
		Short: "Reorder: listed ids first in the given order, the rest after",
		Args:  cobra.MinimumNArgs(1),
		RunE: withStore(func(cmd *cobra.Command, s *store.Store, args []string) error {
			s.Reorder(args)
			printItems(cmd.OutOrStdout(), s.Items())
			return nil
		}),
	}

	todoCmd.AddCommand(listCmd, addCmd, editCmd, toggleCmd, rmCmd, clearCmd, moveCmd)
	return todoCmd
}

func printItems(w io.Writer, items []domain.Item) {
	for _, item := range items {
		box := "[ ]"
		if item.Completed {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s %s  %s\n", box, item.ID, item.Text)
	}
}
