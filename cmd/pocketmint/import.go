package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pocketmint/pocketmint/internal/common"
	"github.com/pocketmint/pocketmint/internal/ledger"
	"github.com/pocketmint/pocketmint/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var walletID string

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import an OFX/QFX bank statement",
		Long: `Import transactions from an OFX or QFX statement into a wallet. Each
imported record goes through the ledger, so wallet balances update as if
the transactions had been entered by hand. Records whose bank-assigned
IDs already exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not open statement %s", args[0]), err)
			}
			defer func() { _ = file.Close() }()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if _, err := store.GetWallet(ctx, walletID); err != nil {
				return fmt.Errorf("failed to load wallet %s: %w", walletID, err)
			}

			txns, err := ofx.NewParser().ParseFile(file, walletID)
			if err != nil {
				return fmt.Errorf("failed to parse statement: %w", err)
			}
			if len(txns) == 0 {
				fmt.Println("No transactions found in statement.")
				return nil
			}

			bar := progressbar.NewOptions(len(txns),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Importing"),
				progressbar.OptionSetWidth(30),
				progressbar.OptionShowCount(),
			)

			svc := ledger.NewService(store)
			imported, skipped := 0, 0
			for i := range txns {
				err := svc.Record(ctx, &txns[i])
				switch {
				case errors.Is(err, common.ErrDuplicateEntry):
					skipped++
				case err != nil:
					return fmt.Errorf("failed to import %q: %w", txns[i].Name, err)
				default:
					imported++
				}
				_ = bar.Add(1)
			}
			fmt.Println()

			fmt.Printf("Imported %d transactions (%d duplicates skipped)\n", imported, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet to import into")
	_ = cmd.MarkFlagRequired("wallet")

	return cmd
}
