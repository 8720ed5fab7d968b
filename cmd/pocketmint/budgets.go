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

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
		Long: `Create budgets over date ranges, link them to categories, and check how
much of each limit has been spent. A budget with no linked categories
tracks spending across all categories.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(linkBudgetCmd())
	cmd.AddCommand(unlinkBudgetCmd())
	cmd.AddCommand(statusBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tName\tLimit\tPeriod\tStart\tEnd")
			for _, b := range budgets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					b.ID, b.Name, b.LimitAmount.StringFixed(2), b.PeriodType, b.StartDate, b.EndDate)
			}
			return nil
		},
	}
}

func addBudgetCmd() *cobra.Command {
	var (
		limitStr  string
		startDate string
		endDate   string
		period    string
		walletID  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := decimal.NewFromString(limitStr)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", limitStr, err)
			}

			periodType := model.PeriodType(period)
			switch periodType {
			case model.PeriodMonthly, model.PeriodWeekly, model.PeriodYearly, model.PeriodCustom:
			default:
				return fmt.Errorf("invalid period %q: expected MONTHLY, WEEKLY, YEARLY or CUSTOM", period)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budget := &model.Budget{
				ID:          uuid.NewString(),
				Name:        args[0],
				LimitAmount: limit,
				StartDate:   startDate,
				EndDate:     endDate,
				PeriodType:  periodType,
				WalletID:    model.Ref(walletID),
			}
			if err := store.CreateBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}

			fmt.Printf("Created budget %q (%s)\n", budget.Name, budget.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&limitStr, "limit", "", "spending limit for the period")
	cmd.Flags().StringVar(&startDate, "start", "", "period start (2006-01-02, inclusive)")
	cmd.Flags().StringVar(&endDate, "end", "", "period end (2006-01-02, inclusive)")
	cmd.Flags().StringVar(&period, "period", "MONTHLY", "MONTHLY, WEEKLY, YEARLY or CUSTOM")
	cmd.Flags().StringVar(&walletID, "wallet", "", "optional wallet scope")
	_ = cmd.MarkFlagRequired("limit")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func linkBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <budget-id> <category-id>",
		Short: "Track a category under a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.LinkBudgetCategory(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to link: %w", err)
			}

			fmt.Printf("Budget %s now tracks category %s\n", args[0], args[1])
			return nil
		},
	}
}

func unlinkBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <budget-id> <category-id>",
		Short: "Stop tracking a category under a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UnlinkBudgetCategory(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to unlink: %w", err)
			}

			fmt.Printf("Budget %s no longer tracks category %s\n", args[0], args[1])
			return nil
		},
	}
}

func statusBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show spend against a budget's limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budget, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load budget: %w", err)
			}

			usage, err := newReportEngine(store).BudgetUsage(ctx, budget)
			if err != nil {
				return fmt.Errorf("failed to compute usage: %w", err)
			}

			fmt.Printf("%s: spent %s of %s (%.1f%%)\n",
				budget.Name, usage.Spend.StringFixed(2), budget.LimitAmount.StringFixed(2), usage.Percent)
			if usage.Exceeded {
				fmt.Printf("Over limit by %s\n", usage.Spend.Sub(budget.LimitAmount).StringFixed(2))
			}
			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Long:  `Delete a budget and its category links. The ledger is never touched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Printf("Deleted budget %s\n", args[0])
			return nil
		},
	}
}
