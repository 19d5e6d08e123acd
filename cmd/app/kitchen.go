package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func newKitchenCmd() *cobra.Command {
	kitchenCmd := &cobra.Command{
		Use:   "kitchen",
		Short: "Work the kitchen queue from the command line",
	}

	var status string
	claimCmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the oldest pending order",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			claim, err := commands.NewClaimNextOrderCommand(order.Status(status))
			if err != nil {
				return err
			}

			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, a.close()) }()

			return claimNext(cmd.Context(), a.root.CreateClaimNextOrderCommandHandler(), claim, cmd.OutOrStdout())
		},
	}
	claimCmd.Flags().StringVar(&status, "status", order.InProgress.String(), "status the claimed order moves to")

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Show the oldest pending order without claiming it",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, a.close()) }()

			next, err := a.root.CreateGetFirstPendingOrderQueryHandler().
				Handle(cmd.Context(), queries.NewGetFirstPendingOrderQuery())
			if errors.Is(err, errs.ErrObjectNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending order")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "order %d: %s (%d toppings)\n",
				next.ID, next.PizzaType, len(next.Toppings))
			for _, t := range next.Toppings {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", t.ID, t.Name)
			}
			return nil
		},
	}

	kitchenCmd.AddCommand(claimCmd, nextCmd)
	return kitchenCmd
}

type claimNextOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ClaimNextOrderCommand) (*order.Order, error)
}

// claimNext runs one claim and reports it to out. An empty queue is not an error.
func claimNext(ctx context.Context, handler claimNextOrderHandler, claim commands.ClaimNextOrderCommand, out io.Writer) error {
	claimed, err := handler.Handle(ctx, claim)
	if errors.Is(err, commands.ErrNoPendingOrder) {
		fmt.Fprintln(out, "no pending order")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "claimed order %d: %s -> %s\n", claimed.ID(), claimed.PizzaType(), claimed.Status())
	return nil
}
