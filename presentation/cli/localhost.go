package cli

import (
	"fmt"

	"jerry/infrastructure/settings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// localhost runs a mock client against a server on this machine: fixed
// monitor geometry, state view and no event emulation.
func localhostCmd(opts Options) *cobra.Command {
	args := settings.LocalhostArgs{}
	var guid string

	cmd := &cobra.Command{
		Use:   "localhost",
		Short: "Connect a mock client to a server on 127.0.0.1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if guid == "" {
				guid = uuid.NewString()
			}
			id, err := uuid.Parse(guid)
			if err != nil {
				return fmt.Errorf("invalid --guid: %w", err)
			}
			args.GUID = id.String()

			params := settings.LocalhostParams(args)
			if err := params.Validate(); err != nil {
				return err
			}
			return opts.Run(cmd.Context(), params)
		},
	}
	cmd.Flags().Uint16Var(&args.Width, "width", 0, "width of the mock monitor in pixels")
	cmd.Flags().Uint16Var(&args.Height, "height", 0, "height of the mock monitor in pixels")
	cmd.Flags().StringVar(&guid, "guid", "", "identifier of the mock computer (random when empty)")
	cmd.Flags().StringVar(&args.Name, "name", "Test", "name of the mock computer")
	cmd.Flags().Uint16Var(&args.Port, "port", settings.DefaultPort, "server port")
	cmd.Flags().StringVar(&args.Password, "password", "2002", "server password")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
