package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tadaboard/internal/board"
	"github.com/Makepad-fr/tadaboard/internal/model"
	"github.com/Makepad-fr/tadaboard/internal/ui"
)

func parseColumn(s string) (model.Column, error) {
	c, err := model.ParseColumn(s)
	if err != nil {
		return "", &board.ValidationError{Field: "column", Reason: err.Error()}
	}
	return c, nil
}

// activeTask resolves an id prefix to a task that is on the board.
func activeTask(b *board.Board, arg string) (*model.Task, board.Location, error) {
	id, err := b.ResolveID(arg)
	if err != nil {
		return nil, board.Location{}, err
	}
	t, loc, ok := b.Find(id)
	if !ok {
		return nil, board.Location{}, &board.NotFoundError{Kind: "task", ID: arg}
	}
	return t, loc, nil
}

// checkOnto rejects nesting moves the board would skip: a task onto
// itself or its own subtree, and a top-level task onto a subtask.
func checkOnto(t *model.Task, loc board.Location, target *model.Task, targetLoc board.Location) error {
	if !t.Walk(func(st, _ *model.Task) bool { return st.ID != target.ID }) {
		return &board.ValidationError{Field: "onto", Reason: fmt.Sprintf("%q is %q or one of its subtasks", target.Name, t.Name)}
	}
	if !loc.IsSubtask() && targetLoc.IsSubtask() {
		return &board.ValidationError{Field: "onto", Reason: fmt.Sprintf("a task can only be nested under a top-level task, and %q is a subtask", target.Name)}
	}
	if loc.ParentID == target.ID {
		return &board.ValidationError{Field: "onto", Reason: fmt.Sprintf("%q is already under %q", t.Name, target.Name)}
	}
	return nil
}

// optionalID resolves a flag value that may be empty.
func optionalID(b *board.Board, arg string) (string, error) {
	if arg == "" {
		return "", nil
	}
	return b.ResolveID(arg)
}

func (a *app) lsCmd() *cobra.Command {
	var (
		column string
		desc   bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the board",
		Args:    exactly(0, "ls [--column c] [--desc]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			cols := model.Columns
			if column != "" {
				c, err := parseColumn(column)
				if err != nil {
					return err
				}
				cols = []model.Column{c}
			}
			ui.Panel(cmd.OutOrStdout(), boardLines(b, cols, desc))
			return nil
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "only show one column")
	cmd.Flags().BoolVarP(&desc, "desc", "d", false, "show description previews")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var f board.Fields
	cmd := &cobra.Command{
		Use:   "add <column> <name...>",
		Short: "Add a task at the bottom of a column",
		Args:  atLeast(2, "add <column> <name...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColumn(args[0])
			if err != nil {
				return err
			}
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			f.Name = strings.Join(args[1:], " ")
			t, err := b.CreateTask(c, f)
			if t == nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added %s to %s", shortID(t.ID), c))
			return err
		},
	}
	cmd.Flags().StringVar(&f.Description, "desc", "", "description (HTML allowed)")
	cmd.Flags().StringVar(&f.URL, "url", "", "link to attach")
	return cmd
}

func (a *app) subCmd() *cobra.Command {
	var f board.Fields
	cmd := &cobra.Command{
		Use:   "sub <parent-id> <name...>",
		Short: "Add a subtask to a task",
		Args:  atLeast(2, "sub <parent-id> <name...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			parent, _, err := activeTask(b, args[0])
			if err != nil {
				return err
			}
			f.Name = strings.Join(args[1:], " ")
			t, err := b.CreateSubtask(parent.ID, f)
			if t == nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added %s under %q", shortID(t.ID), parent.Name))
			return err
		},
	}
	cmd.Flags().StringVar(&f.Description, "desc", "", "description (HTML allowed)")
	cmd.Flags().StringVar(&f.URL, "url", "", "link to attach")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var name, desc, url string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's name, description or url",
		Args:  exactly(1, "edit <id> [--name n] [--desc d] [--url u]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("desc") && !flags.Changed("url") {
				return usagef("edit: nothing to change (use --name, --desc or --url)")
			}
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			t, _, err := activeTask(b, args[0])
			if err != nil {
				return err
			}
			f := board.Fields{Name: t.Name, Description: t.Description, URL: t.URL}
			if flags.Changed("name") {
				f.Name = name
			}
			if flags.Changed("desc") {
				f.Description = desc
			}
			if flags.Changed("url") {
				f.URL = url
			}
			if err := b.EditTask(t.ID, f); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "updated "+shortID(t.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&desc, "desc", "", "new description")
	cmd.Flags().StringVar(&url, "url", "", "new url (empty to remove)")
	return cmd
}

func (a *app) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id...>",
		Aliases: []string{"complete"},
		Short:   "Complete tasks and move them to the bin",
		Args:    atLeast(1, "done <id...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			for _, arg := range args {
				t, _, err := activeTask(b, arg)
				if err != nil {
					return err
				}
				if err := b.Complete(t.ID); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("completed %q", t.Name))
			}
			return nil
		},
	}
}

func (a *app) mvCmd() *cobra.Command {
	var before, onto string
	cmd := &cobra.Command{
		Use:   "mv <id> [column]",
		Short: "Move a task to a column, or onto another task as a subtask",
		Long: `Move a task or subtask.

  tada mv <id> <column> [--before <id>]   place it in a column (subtasks become tasks)
  tada mv <id> --onto <id>                nest it under another task`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && onto != "" || len(args) == 2 {
				return nil
			}
			return usagef("usage: tada mv <id> <column> [--before id] | tada mv <id> --onto <id>")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			t, loc, err := activeTask(b, args[0])
			if err != nil {
				return err
			}
			if onto != "" {
				target, targetLoc, err := activeTask(b, onto)
				if err != nil {
					return err
				}
				if err := checkOnto(t, loc, target, targetLoc); err != nil {
					return err
				}
				if loc.IsSubtask() {
					err = b.MoveSubtask(t.ID, loc.ParentID, target.ID)
				} else {
					err = b.DemoteToSubtask(t.ID, loc.Column, target.ID)
				}
				if err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("moved %q under %q", t.Name, target.Name))
				return nil
			}

			to, err := parseColumn(args[1])
			if err != nil {
				return err
			}
			beforeID, err := optionalID(b, before)
			if err != nil {
				return err
			}
			if loc.IsSubtask() {
				err = b.PromoteSubtaskToTask(t.ID, loc.ParentID, to, beforeID)
			} else {
				err = b.MoveTaskBefore(t.ID, loc.Column, to, beforeID)
			}
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("moved %q to %s", t.Name, to))
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "place in front of this task")
	cmd.Flags().StringVar(&onto, "onto", "", "nest under this task")
	return cmd
}

func (a *app) promoteCmd() *cobra.Command {
	var before string
	cmd := &cobra.Command{
		Use:   "promote <subtask-id> [column]",
		Short: "Turn a subtask into a task (defaults to its parent's column)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return usagef("usage: tada promote <subtask-id> [column] [--before id]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			t, loc, err := activeTask(b, args[0])
			if err != nil {
				return err
			}
			if !loc.IsSubtask() {
				return &board.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a subtask", t.Name)}
			}
			to := loc.Column
			if len(args) == 2 {
				if to, err = parseColumn(args[1]); err != nil {
					return err
				}
			}
			beforeID, err := optionalID(b, before)
			if err != nil {
				return err
			}
			if err := b.PromoteSubtaskToTask(t.ID, loc.ParentID, to, beforeID); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("promoted %q to %s", t.Name, to))
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "place in front of this task")
	return cmd
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <column|parent-id> <id...>",
		Short: "Reorder a column or a task's subtasks; listed ones go first, the rest keep their order",
		Args:  atLeast(2, "order <column|parent-id> <id...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := b.ResolveID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			if c, err := model.ParseColumn(args[0]); err == nil {
				for i, id := range ids {
					if b.GetTask(c, id) == nil {
						return &board.ValidationError{Field: "id", Reason: fmt.Sprintf("%s is not a task in %s", args[i+1], c)}
					}
				}
				if err := b.Reorder(c, ids); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "reordered "+string(c))
				return nil
			}

			parent, _, err := activeTask(b, args[0])
			if err != nil {
				return err
			}
			for i, id := range ids {
				if parent.Subtask(id) == nil {
					return &board.ValidationError{Field: "id", Reason: fmt.Sprintf("%s is not a subtask of %q", args[i+1], parent.Name)}
				}
			}
			if err := b.ReorderSubtasks(parent.ID, ids); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("reordered subtasks of %q", parent.Name))
			return nil
		},
	}
}

func (a *app) deletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deleted",
		Aliases: []string{"bin"},
		Short:   "List completed tasks that can be restored",
		Args:    exactly(0, "deleted"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			ui.Panel(cmd.OutOrStdout(), deletedLines(b))
			return nil
		},
	}
}

func (a *app) restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Bring a completed task back",
		Args:  exactly(1, "restore <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			id, err := b.ResolveID(args[0])
			if err != nil {
				return err
			}
			t, err := b.Restore(id)
			if t == nil {
				return err
			}
			where := "back"
			if _, loc, ok := b.Find(t.ID); ok {
				where = "to " + string(loc.Column)
				if loc.IsSubtask() {
					where = "under " + shortID(loc.ParentID)
				}
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("restored %q %s", t.Name, where))
			return err
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Permanently empty the bin",
		Args:  exactly(0, "clear [--yes]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.openBoard(cmd.Context())
			if err != nil {
				return err
			}
			n := len(b.Deleted())
			if n == 0 {
				ui.OK(cmd.OutOrStdout(), "bin is already empty")
				return nil
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Permanently delete %d completed task(s)? [y/N] ", n)) {
				ui.Hint(cmd.ErrOrStderr(), "nothing deleted")
				return nil
			}
			cleared, err := b.ClearDeleted()
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("cleared %d task(s)", cleared))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
