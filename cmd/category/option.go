package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var optionCmd = &cobra.Command{
	Use:   "option",
	Short: "Manage a category's options",
}

var (
	flagOptionAddParent    string
	flagOptionAddSortOrder int
	flagOptionAddInactive  bool
)

var optionAddCmd = &cobra.Command{
	Use:   "add <category-id> <name>",
	Short: "Add an option to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		name := strings.TrimSpace(args[1])
		if name == "" {
			return errors.New("name must not be empty")
		}
		if flagOptionAddParent != "" {
			if _, err := uuid.Parse(flagOptionAddParent); err != nil {
				return fmt.Errorf("invalid --parent option id: %w", err)
			}
		}
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		o := &pgdao.CategoryOption{
			CategoryID: args[0],
			Name:       name,
			SortOrder:  flagOptionAddSortOrder,
			IsActive:   !flagOptionAddInactive,
		}
		if flagOptionAddParent != "" {
			o.ParentOptionID.Valid = true
			o.ParentOptionID.String = flagOptionAddParent
		}
		if err := pgdao.AddCategoryOption(ctx, db, o); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"id": o.ID, "category_id": o.CategoryID, "name": o.Name, "sort_order": o.SortOrder,
		})
	},
}

var optionListCmd = &cobra.Command{
	Use:   "list <category-id>",
	Short: "List a category's options, parents before children",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		opts, err := pgdao.ListCategoryOptions(ctx, db, args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Name", "ID", "Parent", "Order"})
		out := make([]map[string]any, 0, len(opts))
		for _, o := range opts {
			parent := ""
			if o.ParentOptionID.Valid {
				parent = o.ParentOptionID.String
			}
			table.Append([]string{o.Name, o.ID, parent, strconv.Itoa(o.SortOrder)})
			row := map[string]any{"id": o.ID, "name": o.Name, "sort_order": o.SortOrder}
			if parent != "" {
				row["parent_option_id"] = parent
			}
			out = append(out, row)
		}
		table.SetFooter([]string{"total", strconv.Itoa(len(opts)), "", ""})
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	CategoryCmd.AddCommand(optionCmd)
	optionCmd.AddCommand(optionAddCmd)
	optionCmd.AddCommand(optionListCmd)
	optionAddCmd.Flags().StringVar(&flagOptionAddParent, "parent", "", "Parent option id for subcategory options")
	optionAddCmd.Flags().IntVar(&flagOptionAddSortOrder, "sort-order", 0, "Display order within the category")
	optionAddCmd.Flags().BoolVar(&flagOptionAddInactive, "inactive", false, "Mark the option inactive")
}
