package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"crane-recon/internal/domain"
	"crane-recon/internal/matcher"
)

func newClassifyCommand() *cobra.Command {
	var transaction, payment, tolerance string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Rate how closely a payment amount matches a transaction amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txAmount, err := decimal.NewFromString(transaction)
			if err != nil {
				return fmt.Errorf("invalid --transaction amount: %w", err)
			}
			payAmount, err := decimal.NewFromString(payment)
			if err != nil {
				return fmt.Errorf("invalid --payment amount: %w", err)
			}
			ratio, err := decimal.NewFromString(tolerance)
			if err != nil {
				return fmt.Errorf("invalid --tolerance: %w", err)
			}

			engine := matcher.NewReconciliationEngine(ratio, nil)
			candidate := engine.Evaluate(domain.BankTransaction{Amount: txAmount}, domain.Payment{Amount: payAmount})
			fmt.Fprintf(cmd.OutOrStdout(), "%s (difference %s, tolerance %s)\n",
				candidate.Quality, candidate.Difference.StringFixed(2), txAmount.Mul(engine.Tolerance()).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&transaction, "transaction", "", "bank transaction amount (required)")
	cmd.Flags().StringVar(&payment, "payment", "", "payment amount (required)")
	cmd.Flags().StringVar(&tolerance, "tolerance", matcher.DefaultTolerance.String(), "relative tolerance")
	_ = cmd.MarkFlagRequired("transaction")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}
