package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe both channels and report which one would serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, c.svc.HealthCheck(cmd.Context()))
		},
	}
}

func (c *cli) ledgersCmd() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "ledgers",
		Short: "List every ledger with opening and closing balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, c.svc.GetLedgers(cmd.Context(), refresh))
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}

func (c *cli) vouchersCmd() *cobra.Command {
	var q services.VoucherQuery
	cmd := &cobra.Command{
		Use:     "vouchers",
		Short:   "List vouchers in a date window",
		Example: "extractor vouchers --from 20250401 --to 20250430 --type Sales --entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, c.svc.GetVouchers(cmd.Context(), q))
		},
	}
	cmd.Flags().StringVar(&q.From, "from", "", "first day, YYYYMMDD; defaults to the fiscal year start")
	cmd.Flags().StringVar(&q.To, "to", "", "last day, YYYYMMDD; defaults to the fiscal year end")
	cmd.Flags().StringVar(&q.Type, "type", "", "voucher type, e.g. Sales")
	cmd.Flags().IntVar(&q.Limit, "limit", services.DefaultVoucherLimit, "maximum vouchers returned")
	cmd.Flags().BoolVar(&q.IncludeEntries, "entries", false, "include ledger entries")
	return cmd
}

func (c *cli) dayBookCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daybook",
		Short: "Vouchers of one day with totals per voucher type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, c.svc.GetDayBook(cmd.Context(), date))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day, YYYYMMDD; defaults to today")
	return cmd
}

func (c *cli) reportCmd(use, short string, run func(cmd *cobra.Command) models.Envelope) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEnvelope(cmd, run(cmd))
		},
	}
}
