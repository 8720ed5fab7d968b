package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pocketmint/pocketmint/internal/filter"
	"github.com/pocketmint/pocketmint/internal/ledger"
	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/pocketmint/pocketmint/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage the transaction ledger",
		Long: `Record, search, edit and remove ledger transactions. Edits and removals
reverse the original wallet-balance effect before applying the new one.`,
	}

	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		amountStr  string
		walletID   string
		categoryID string
		goalID     string
		income     bool
		when       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record a new transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			direction := model.DirectionExpense
			if income {
				direction = model.DirectionIncome
			}

			txn := &model.Transaction{
				Name:       args[0],
				Amount:     amount,
				Direction:  direction,
				WalletID:   walletID,
				CategoryID: model.Ref(categoryID),
				GoalID:     model.Ref(goalID),
				CreateTime: when,
			}
			if err := ledger.NewService(store).Record(ctx, txn); err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			fmt.Printf("Recorded %s %s (%s)\n", direction, amount.StringFixed(2), txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (non-negative)")
	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&goalID, "goal", "", "goal id this contributes to")
	cmd.Flags().BoolVar(&income, "income", false, "record as income instead of expense")
	cmd.Flags().StringVar(&when, "time", "", "timestamp (2006-01-02 15:04:05, default now)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("wallet")

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		categoryID string
		walletID   string
		name       string
		dateFrom   string
		dateTo     string
		minStr     string
		maxStr     string
		kind       string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(ctx, service.Query{OrderBy: "createTime DESC", Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			criteria := filter.Criteria{
				CategoryID: categoryID,
				WalletID:   walletID,
				Name:       name,
				DateFrom:   dateFrom,
				DateTo:     dateTo,
			}
			if minStr != "" {
				min, err := decimal.NewFromString(minStr)
				if err != nil {
					return fmt.Errorf("invalid --min %q: %w", minStr, err)
				}
				criteria.MinAmount = &min
			}
			if maxStr != "" {
				max, err := decimal.NewFromString(maxStr)
				if err != nil {
					return fmt.Errorf("invalid --max %q: %w", maxStr, err)
				}
				criteria.MaxAmount = &max
			}
			switch kind {
			case "":
			case "income":
				d := model.DirectionIncome
				criteria.Direction = &d
			case "expense":
				d := model.DirectionExpense
				criteria.Direction = &d
			default:
				return fmt.Errorf("invalid --type %q: expected income or expense", kind)
			}

			txns = criteria.Apply(txns)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tTime\tName\tDirection\tAmount\tWallet\tCategory")
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.CreateTime, t.Name, t.Direction, t.Amount.StringFixed(2), t.WalletID, t.CategoryID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "exact category id")
	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet id substring")
	cmd.Flags().StringVar(&name, "name", "", "name substring")
	cmd.Flags().StringVar(&dateFrom, "from", "", "earliest timestamp or date")
	cmd.Flags().StringVar(&dateTo, "to", "", "latest timestamp or date (bare dates include the whole day)")
	cmd.Flags().StringVar(&minStr, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxStr, "max", "", "maximum amount")
	cmd.Flags().StringVar(&kind, "type", "", "income or expense")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap the number of rows fetched")

	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		amountStr  string
		walletID   string
		categoryID string
		goalID     string
		name       string
		kind       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction. The stored record's wallet effect is reversed and the
new state's effect applied, so balances stay right even when the amount,
direction or wallet changes. Flags left unset keep their stored values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransaction(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load transaction: %w", err)
			}

			if amountStr != "" {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", amountStr, err)
				}
				txn.Amount = amount
			}
			if walletID != "" {
				txn.WalletID = walletID
			}
			if cmd.Flags().Changed("category") {
				txn.CategoryID = model.Ref(categoryID)
			}
			if cmd.Flags().Changed("goal") {
				txn.GoalID = model.Ref(goalID)
			}
			if name != "" {
				txn.Name = name
			}
			switch kind {
			case "":
			case "income":
				txn.Direction = model.DirectionIncome
			case "expense":
				txn.Direction = model.DirectionExpense
			default:
				return fmt.Errorf("invalid --type %q: expected income or expense", kind)
			}

			if err := ledger.NewService(store).Edit(ctx, txn); err != nil {
				return fmt.Errorf("failed to edit transaction: %w", err)
			}

			fmt.Printf("Updated transaction %s\n", txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&walletID, "wallet", "", "new wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "new category id (empty clears it)")
	cmd.Flags().StringVar(&goalID, "goal", "", "new goal id (empty clears it)")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&kind, "type", "", "income or expense")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a transaction and revert its wallet effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := ledger.NewService(store).Remove(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove transaction: %w", err)
			}

			fmt.Printf("Removed transaction %s\n", args[0])
			return nil
		},
	}
}
