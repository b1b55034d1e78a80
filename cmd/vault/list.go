package vault

import (
	"context"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	vpkg "github.com/ferryhill/kanbord/internal/vault"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List secrets stored in the vault (names only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		dao, err := vpkg.NewVaultDAO(cfg.Vault.Backend)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		secrets, err := dao.ListSecrets(ctx)
		if err != nil {
			return err
		}
		if len(secrets) == 0 {
			fmt.Fprintln(os.Stderr, "no secrets stored")
			return nil
		}
		for _, md := range secrets {
			updated := ""
			if md.UpdatedAt != nil {
				updated = "  " + md.UpdatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(os.Stdout, "%s%s\n", md.Name, updated)
		}
		return nil
	},
}

func init() {
	VaultCmd.AddCommand(listCmd)
}
