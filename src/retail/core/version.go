package core

import (
	"fmt"

	"github.com/bitswalk/retail/src/retail/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(viper.GetString("output.format"))
		if err != nil {
			return err
		}

		p := output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
		switch format {
		case output.FormatJSON:
			return p.PrintJSON(VersionInfo)
		case output.FormatYAML:
			return p.PrintYAML(VersionInfo)
		}

		fmt.Fprintln(cmd.OutOrStdout(), VersionInfo.Full())
		return nil
	},
}
