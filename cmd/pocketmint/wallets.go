package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
		Long:  `List, add, rename and delete the cash accounts transactions are recorded against.`,
	}

	cmd.AddCommand(listWalletsCmd())
	cmd.AddCommand(addWalletCmd())
	cmd.AddCommand(renameWalletCmd())
	cmd.AddCommand(deleteWalletCmd())

	return cmd
}

func listWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallets, err := store.ListWallets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list wallets: %w", err)
			}

			if len(wallets) == 0 {
				fmt.Println("No wallets found. Use 'pocketmint wallets add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tName\tBalance\tColor")
			for _, wallet := range wallets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", wallet.ID, wallet.Name, wallet.Balance.StringFixed(2), wallet.Color)
			}
			return nil
		},
	}
}

func addWalletCmd() *cobra.Command {
	var (
		balanceStr string
		color      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			balance, err := decimal.NewFromString(balanceStr)
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", balanceStr, err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallet := &model.Wallet{
				ID:      uuid.NewString(),
				Name:    args[0],
				Balance: balance,
				Color:   color,
			}
			if err := store.CreateWallet(ctx, wallet); err != nil {
				return fmt.Errorf("failed to create wallet: %w", err)
			}

			fmt.Printf("Created wallet %q (%s)\n", wallet.Name, wallet.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&balanceStr, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&color, "color", "", "display color tag")

	return cmd
}

func renameWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Sparse update: only the name is touched.
			if err := store.UpdateWallet(ctx, &model.Wallet{ID: args[0], Name: args[1]}); err != nil {
				return fmt.Errorf("failed to rename wallet: %w", err)
			}

			fmt.Printf("Renamed wallet %s to %q\n", args[0], args[1])
			return nil
		},
	}
}

func deleteWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wallet and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteWallet(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete wallet: %w", err)
			}

			fmt.Printf("Deleted wallet %s\n", args[0])
			return nil
		},
	}
}
