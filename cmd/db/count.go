package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var flagCountJSON bool

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count rows for each public table and the stats view",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := db.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema='public' AND table_type='BASE TABLE' ORDER BY table_name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		counts := map[string]int64{}
		identRe := regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
		for _, t := range tables {
			if !identRe.MatchString(t) {
				continue
			}
			var n int64
			q := fmt.Sprintf("SELECT COUNT(*) FROM public.%s", t)
			if err := db.QueryRow(ctx, q).Scan(&n); err != nil {
				return err
			}
			counts[t] = n
		}
		// Stats view row count (best-effort; view may not exist yet)
		var vn int64
		if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM project_kanban_stats`).Scan(&vn); err == nil {
			counts["project_kanban_stats"] = vn
		}

		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, "%s\t%d\n", k, counts[k])
		}

		enc := json.NewEncoder(os.Stdout)
		if flagCountJSON {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(counts)
	},
}

func init() {
	DBCmd.AddCommand(countCmd)
	countCmd.Flags().BoolVar(&flagCountJSON, "json", false, "Pretty-print JSON output")
}
