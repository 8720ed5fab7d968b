package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		dateFrom string
		dateTo   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the financial dashboard",
		Long: `Show overall income and expense totals, per-category spending, the
current monthly limit, budget usage and goal progress. Every figure is
computed fresh from the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := newReportEngine(store)

			totals, err := engine.Totals(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute totals: %w", err)
			}

			limit, err := engine.MonthlyLimit(ctx)
			if err != nil {
				return fmt.Errorf("failed to resolve monthly limit: %w", err)
			}

			fmt.Printf("Income:  %s\n", totals.Income.StringFixed(2))
			fmt.Printf("Expense: %s\n", totals.Expense.StringFixed(2))
			fmt.Printf("Net:     %s\n", totals.Income.Sub(totals.Expense).StringFixed(2))
			fmt.Printf("Monthly limit: %s\n", limit.StringFixed(2))

			if dateFrom != "" && dateTo != "" {
				summary, err := engine.CategorySummary(ctx, dateFrom, dateTo)
				if err != nil {
					return fmt.Errorf("failed to compute category summary: %w", err)
				}

				keys := make([]string, 0, len(summary))
				for k := range summary {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				fmt.Printf("\nSpending by category (%s to %s):\n", dateFrom, dateTo)
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, k := range keys {
					label := k
					if label == "" {
						label = "(uncategorized)"
					}
					fmt.Fprintf(w, "  %s\t%s\n", label, summary[k].StringFixed(2))
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}
			if len(budgets) > 0 {
				fmt.Println("\nBudgets:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for i := range budgets {
					usage, err := engine.BudgetUsage(ctx, &budgets[i])
					if err != nil {
						return fmt.Errorf("failed to compute usage for %s: %w", budgets[i].Name, err)
					}
					marker := ""
					if usage.Exceeded {
						marker = "OVER"
					}
					fmt.Fprintf(w, "  %s\t%s / %s\t%.1f%%\t%s\n",
						budgets[i].Name, usage.Spend.StringFixed(2),
						budgets[i].LimitAmount.StringFixed(2), usage.Percent, marker)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			goals, err := store.ListGoals(ctx)
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}
			if len(goals) > 0 {
				fmt.Println("\nGoals:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for i := range goals {
					progress, err := engine.GoalProgress(ctx, &goals[i])
					if err != nil {
						return fmt.Errorf("failed to compute progress for %s: %w", goals[i].Name, err)
					}
					fmt.Fprintf(w, "  %s\t%s / %s\t%.1f%%\t%s\n",
						goals[i].Name, progress.Balance.StringFixed(2),
						goals[i].Target.StringFixed(2), progress.Percent, progress.Status)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateFrom, "from", "", "category summary window start (2006-01-02)")
	cmd.Flags().StringVar(&dateTo, "to", "", "category summary window end (2006-01-02, inclusive)")

	return cmd
}
