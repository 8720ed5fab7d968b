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

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long: `Create savings goals and track progress toward them. A goal's balance is
never stored: it is always the sum of the transactions linked to it.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(progressGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals with computed progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goals, err := store.ListGoals(ctx)
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}

			engine := newReportEngine(store)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tName\tTarget\tBalance\tProgress\tStatus\tDeadline")
			for i := range goals {
				progress, err := engine.GoalProgress(ctx, &goals[i])
				if err != nil {
					return fmt.Errorf("failed to compute progress for %s: %w", goals[i].Name, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f%%\t%s\t%s\n",
					goals[i].ID, goals[i].Name, goals[i].Target.StringFixed(2),
					progress.Balance.StringFixed(2), progress.Percent, progress.Status, goals[i].Deadline)
			}
			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		targetStr string
		deadline  string
		priority  int
		walletID  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := decimal.NewFromString(targetStr)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", targetStr, err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goal := &model.Goal{
				ID:       uuid.NewString(),
				Name:     args[0],
				Target:   target,
				Deadline: deadline,
				Priority: priority,
				WalletID: model.Ref(walletID),
			}
			if err := store.CreateGoal(ctx, goal); err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}

			fmt.Printf("Created goal %q (%s)\n", goal.Name, goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetStr, "target", "", "target amount")
	cmd.Flags().StringVar(&deadline, "deadline", "", "optional deadline (2006-01-02)")
	cmd.Flags().IntVar(&priority, "priority", 0, "priority (lower sorts first)")
	cmd.Flags().StringVar(&walletID, "wallet", "", "optional wallet link")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func progressGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id>",
		Short: "Show a goal's computed balance and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goal, err := store.GetGoal(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load goal: %w", err)
			}

			progress, err := newReportEngine(store).GoalProgress(ctx, goal)
			if err != nil {
				return fmt.Errorf("failed to compute progress: %w", err)
			}

			fmt.Printf("%s: %s of %s (%.1f%%, %s)\n",
				goal.Name, progress.Balance.StringFixed(2), goal.Target.StringFixed(2),
				progress.Percent, progress.Status)
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Long: `Delete a goal. Its contributions stay in the ledger with their wallet
effects intact; they just lose the goal link.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteGoal(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete goal: %w", err)
			}

			fmt.Printf("Deleted goal %s\n", args[0])
			return nil
		},
	}
}
