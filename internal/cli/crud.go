package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <feature> <id>",
		Short: "Get a record by ID",
		Long: `Get retrieves a record from a feature's table and prints it as JSON.

Example:
  eproc get tenders tnd-001
  eproc get suppliers sup-003`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]
			t, backend, err := a.table(cmd.Context(), name)
			if err != nil {
				return err
			}
			defer backend.Detach()

			entity, err := t.Get(id)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("record %q not found in %s", id, name)
				}
				return systemError(fmt.Errorf("get record: %w", err))
			}
			return writeJSON(cmd.OutOrStdout(), entity)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <feature> [id] <json>",
		Short: "Create or update a record",
		Long: `Set writes a record to a feature's table. Without an id argument the
record's own "id" field is used, or a new one is generated. The id written is
printed.

Example:
  eproc set suppliers '{"name":"Acme Supplies","status":"active"}'
  eproc set tenders tnd-001 '{"title":"Office furniture","status":"published"}'`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data := args[0], args[len(args)-1]
			var id string
			if len(args) == 3 {
				id = args[1]
			}

			entity, err := types.NewEntity(name)
			if err != nil {
				return fmt.Errorf("unknown feature %q", name)
			}
			if err := json.Unmarshal([]byte(data), entity); err != nil {
				return fmt.Errorf("invalid JSON for %s: %w", name, err)
			}
			if id == "" {
				id = entity.EntityID()
			}

			t, backend, err := a.table(cmd.Context(), name)
			if err != nil {
				return err
			}
			defer backend.Detach()

			written, err := t.Set(id, entity)
			if err != nil {
				return systemError(fmt.Errorf("set record: %w", err))
			}
			logger.FromContext(cmd.Context()).Info("record written", "feature", name, "id", written)

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), entity)
			}
			fmt.Fprintln(cmd.OutOrStdout(), written)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <feature> <id>",
		Short: "Delete a record by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]
			t, backend, err := a.table(cmd.Context(), name)
			if err != nil {
				return err
			}
			defer backend.Detach()

			if err := t.Delete(id); err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("record %q not found in %s", id, name)
				}
				return systemError(fmt.Errorf("delete record: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from %s\n", id, name)
			return nil
		},
	}
}
