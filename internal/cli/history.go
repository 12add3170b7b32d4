package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goujonmael/resmon/internal/store"
)

var historyDataDir string

var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Summarize recorded snapshots",
	Long: `Without arguments, lists the days that have recorded data. With a
day (YYYY-MM-DD), prints a summary of that day's recording.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			days, err := store.ListDays(historyDataDir)
			if err != nil {
				return fmt.Errorf("no recorded data: %w", err)
			}
			if len(days) == 0 {
				fmt.Println("No recorded data. Run the panel with --record.")
				return nil
			}
			for _, day := range days {
				fmt.Println(day)
			}
			return nil
		}

		snaps, err := store.LoadDay(historyDataDir, args[0])
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("No samples recorded for", args[0])
			return nil
		}

		var cpuSum, tempSum, ramSum, tempMax float64
		for _, s := range snaps {
			cpuSum += s.Snapshot.CPUUsagePercent
			tempSum += s.Snapshot.CPUTempCelsius
			ramSum += s.Snapshot.RAMUsagePercent
			if s.Snapshot.CPUTempCelsius > tempMax {
				tempMax = s.Snapshot.CPUTempCelsius
			}
		}
		n := float64(len(snaps))

		fmt.Printf("%s: %d samples, %s to %s\n", args[0], len(snaps),
			snaps[0].Time.Format("15:04:05"), snaps[len(snaps)-1].Time.Format("15:04:05"))
		fmt.Printf("  cpu  avg %5.1f%%\n", cpuSum/n)
		fmt.Printf("  temp avg %5.1f °C  peak %5.1f °C\n", tempSum/n, tempMax)
		fmt.Printf("  ram  avg %5.1f%%\n", ramSum/n)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDataDir, "data-dir", "", "data directory (default ~/.resmon-data)")
	rootCmd.AddCommand(historyCmd)
}
