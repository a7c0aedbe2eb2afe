package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "neuro",
		Short:         "Neuro Store client: browse, subscribe and manage your account",
		Long:          "neuro is the terminal client for the Neuro Store subscription service: sign up, log in, browse the neural-network catalog, subscribe to plans, check your dashboard and top up your balance.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newCatalogCmd(app),
		newDashboardCmd(app),
		newAdminCmd(app),
		newBalanceCmd(app),
		newPingCmd(app),
	)

	return rootCmd
}
