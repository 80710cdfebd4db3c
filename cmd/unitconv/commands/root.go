package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-unitconv/internal/config"
	"github.com/goliatone/go-unitconv/pkg/prompt"
)

// deps are the collaborators subcommands share.
type deps struct {
	driver func() prompt.Driver
	logger *log.Logger
}

type app struct {
	deps
	configPath string
	cfg        config.Config
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the unitconv command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{
		driver: func() prompt.Driver { return prompt.NewSurveyDriver() },
		logger: log.Default(),
	})
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d, cfg: config.Default()}

	root := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert values between units of length, temperature, area, volume, weight and time",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")

	root.AddCommand(serveCmd(a), convertCmd(a), unitsCmd())
	return root
}
