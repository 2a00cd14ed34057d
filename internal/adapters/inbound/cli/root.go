package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/config"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/logging"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose   bool
	configDir string
	logFile   string
}

func (o *rootOptions) loadConfig() (domain.ProjectConfig, error) {
	return config.New().Load(o.configDir)
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	return logging.New(logging.Options{Verbose: o.verbose, Path: o.logFile})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tripinvoice",
		Short:         "Car-rental invoices from the terminal",
		Long:          "tripinvoice fills in a car-rental invoice, keeps vehicle subtotals and the total in step, and prints it as a PDF or HTML document.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".", "Directory containing "+config.FileName)
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEditCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
