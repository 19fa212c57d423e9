package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/client"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending alarms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.List(ctx, options(cmd))
		},
	}
}

func newCreateCommand() *cobra.Command {
	create := new(client.CreateOptions)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a repeating alarm.",
		Long: `Create a repeating alarm at a time of day.

Without --days, or with --days daily, a single daily alarm is created.
Otherwise one alarm per listed weekday is created (e.g. --days mon,wed,fri).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Create(ctx, options(cmd), create)
		},
	}

	cmd.Flags().StringVarP(&create.Title, "title", "t", "", "alarm title")
	cmd.Flags().StringVar(&create.Time, "time", "", "time of day as HH:MM")
	cmd.Flags().StringSliceVarP(&create.Days, "days", "d", nil, "weekdays (sun..sat, 1..7 Sunday-first, or daily)")

	if err := cmd.MarkFlagRequired("time"); err != nil {
		panic(err)
	}

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete identifier...",
		Short: "Delete alarms by identifier.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Delete(ctx, options(cmd), args)
		},
	}
}

func newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Dismiss the ringing alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Stop(ctx, options(cmd))
		},
	}
}

func newActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Re-read the notification permission and reload alarms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Activate(ctx, options(cmd))
		},
	}
}

func newAuthorizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authorize",
		Short: "Request permission to deliver alarms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Authorize(ctx, options(cmd))
		},
	}
}

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow alarm updates and rings until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Watch(ctx, options(cmd))
		},
	}
}

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pending alarms as iCalendar.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Export(ctx, options(cmd), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for standard output")

	return cmd
}
