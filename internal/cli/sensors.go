package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sensor"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List all temperature sensors grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st := prefs.NewFileStore()
		smp := newSampler(cfg, st)
		smp.Sample()

		entries := sensor.ClassifyAll(smp.Readings())
		if len(entries) == 0 {
			fmt.Println("No temperature sensors found.")
			return nil
		}

		selected, _ := st.Load()
		for _, e := range entries {
			marker := "  "
			if e.Label == selected {
				marker = "* "
			}
			fmt.Printf("%s%-12s %-32s %6.1f °C\n", marker, e.Category, e.Label, e.Temp)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
}
