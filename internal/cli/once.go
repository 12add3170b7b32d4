package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goujonmael/resmon/internal/prefs"
)

var onceJSON bool

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Print a single metrics sample and exit",
	Long: `Takes one sample and prints the panel line to stdout. Useful for
status bars that shell out instead of embedding the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		smp := newSampler(cfg, prefs.NewFileStore())
		snap := smp.Sample()

		if onceJSON {
			return json.NewEncoder(os.Stdout).Encode(snap)
		}

		fmt.Printf("CPU %.1f%%  %d MHz  %.1f °C  RAM %.1f%%\n",
			snap.CPUUsagePercent, snap.AvgFreqMHz, snap.CPUTempCelsius, snap.RAMUsagePercent)
		return nil
	},
}

func init() {
	onceCmd.Flags().BoolVar(&onceJSON, "json", false, "emit the snapshot as JSON")
	rootCmd.AddCommand(onceCmd)
}
