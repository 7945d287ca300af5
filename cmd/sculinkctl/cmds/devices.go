package cmds

import (
	"context"
	"fmt"
	"sculink/internal/scu"
	"sculink/internal/types"
	"time"

	"github.com/spf13/cobra"
)

var requestTimeout time.Duration

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the devices resolved from the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices := store.Devices()
		out := make([]types.DeviceConfig, 0, len(devices))
		for _, name := range store.Names() {
			dc := devices[name]
			dc.APIKey = redact(dc.APIKey)
			dc.TimeAdminPwd = redact(dc.TimeAdminPwd)
			out = append(out, dc)
		}
		return render(cmd.OutOrStdout(), out)
	},
}

// deviceClient resolves name and returns a client for its SCU.
func deviceClient(name string) (*scu.Client, error) {
	dc, ok := store.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("device %q is not configured", name)
	}
	return scu.NewClient(dc.SCUURL, clients), nil
}

var infoCmd = &cobra.Command{
	Use:   "info [device]",
	Short: "Fetch the device info from the SCU",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := deviceClient(deviceArg(args))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()
		info, err := c.TseInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch device info: %w", err)
		}
		return render(cmd.OutOrStdout(), info)
	},
}

var echoCmd = &cobra.Command{
	Use:   "echo [device] [message]",
	Short: "Send a message to the SCU and print the answer",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "ping"
		if len(args) == 2 {
			message = args[1]
		}
		c, err := deviceClient(deviceArg(args))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()
		resp, err := c.Echo(ctx, types.EchoRequest{Message: message})
		if err != nil {
			return fmt.Errorf("echo failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		return nil
	},
}

func deviceArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return types.DefaultDeviceName
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

func init() {
	infoCmd.Flags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "request timeout")
	echoCmd.Flags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(echoCmd)
}
