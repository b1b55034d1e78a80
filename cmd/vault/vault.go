package vault

import "github.com/spf13/cobra"

// VaultCmd is the root for `kbc vault` commands.
var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage database passwords in the local vault (macOS Keychain)",
}
