package cmds

import (
	"fmt"
	"os"
	"os/signal"
	"sculink/internal/api"
	"sculink/internal/scu"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulatePort int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an in-memory SCU on a local port",
	Long: `Run an in-memory SCU that speaks the SCU wire protocol. Point a device's
scu_url at http://localhost:<port> to exercise the shared library without
a real signing unit. State is lost when the simulator stops.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		memory := scu.NewMemory()
		stop, done := api.RunServerInterruptible(simulatePort, memory)
		fmt.Fprintf(cmd.OutOrStdout(), "Simulating SCU %s on port %d.\n", memory.Serial, simulatePort)

		select {
		case err := <-done:
			return err
		case s := <-sig:
			log.Infof("received %s, stopping simulator", s)
			close(stop)
			return <-done
		case <-cmd.Context().Done():
			close(stop)
			return <-done
		}
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simulatePort, "port", 9080, "port to listen on")
	rootCmd.AddCommand(simulateCmd)
}
