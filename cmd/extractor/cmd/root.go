package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trugenie/go-tally-extraction/cmd/setup"
	"github.com/trugenie/go-tally-extraction/internal/common/graceful"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services"
)

const stopTimeout = 5 * time.Second

var errExtractionFailed = errors.New("extraction failed")

// Initializer builds the extraction facade for one CLI run.
type Initializer func(configPaths []string) (services.ExtractionService, []graceful.ProcessStopper, error)

func defaultInitializer(configPaths []string) (services.ExtractionService, []graceful.ProcessStopper, error) {
	opts := []setup.Option{setup.WithQuietLog()}
	if len(configPaths) > 0 {
		opts = append(opts, setup.WithConfigSearchPaths(configPaths...))
	}
	s, stoppers, err := setup.Init("extractor", opts...)
	if err != nil {
		return nil, stoppers, err
	}
	return s.Service.Extraction, stoppers, nil
}

type cli struct {
	init     Initializer
	svc      services.ExtractionService
	stoppers []graceful.ProcessStopper

	configPaths []string
	company     string
	mode        string
}

func newCLI(init Initializer) *cli {
	return &cli{init: init}
}

// rootCommand wires every subcommand against the facade built by c.init.
func (c *cli) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "extractor",
		Short:             "Extract accounting data from Tally",
		Long:              `Reads masters and vouchers over the Tally XML API, falling back to ODBC, and prints the result envelope as JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}
	rootCmd.PersistentFlags().StringSliceVar(&c.configPaths, "config", nil, "config search paths")
	rootCmd.PersistentFlags().StringVar(&c.company, "company", "", "company to read, overrides the configured one")
	rootCmd.PersistentFlags().StringVar(&c.mode, "mode", "", "transport mode: auto, xml_api or odbc")

	rootCmd.AddCommand(
		c.healthCmd(),
		c.ledgersCmd(),
		c.vouchersCmd(),
		c.dayBookCmd(),
		c.reportCmd("trial-balance", "Debit and credit columns of every ledger", func(cmd *cobra.Command) models.Envelope {
			return c.svc.GetTrialBalance(cmd.Context())
		}),
		c.reportCmd("financial-summary", "Bank, cash, receivable, payable and loan totals", func(cmd *cobra.Command) models.Envelope {
			return c.svc.GetFinancialSummary(cmd.Context())
		}),
		c.reportCmd("export", "Every entity of the company in one document", func(cmd *cobra.Command) models.Envelope {
			return c.svc.ExportAll(cmd.Context())
		}),
	)
	return rootCmd
}

// Execute runs the CLI with the configured extraction engine. This is called by main.main().
func Execute() {
	c := newCLI(defaultInitializer)
	err := c.rootCommand().Execute()
	c.stop()
	if err != nil {
		if !errors.Is(err, errExtractionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (c *cli) preRun(cmd *cobra.Command, args []string) error {
	svc, stoppers, err := c.init(c.configPaths)
	c.stoppers = stoppers
	if err != nil {
		return fmt.Errorf("failed to setup extractor: %w", err)
	}
	c.svc = svc

	if c.company == "" && c.mode == "" {
		return nil
	}
	company := c.company
	if company == "" {
		company = svc.Context().Company
	}
	if env := svc.SwitchCompany(cmd.Context(), company, c.mode); !env.Success {
		return printEnvelope(cmd, env)
	}
	return nil
}

func (c *cli) stop() {
	graceful.StopProcess(stopTimeout, c.stoppers...)
}

func printEnvelope(cmd *cobra.Command, env models.Envelope) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	if !env.Success {
		return fmt.Errorf("%w: %s", errExtractionFailed, env.ErrorKind)
	}
	return nil
}
