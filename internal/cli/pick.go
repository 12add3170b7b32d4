package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goujonmael/resmon/internal/picker"
	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sensor"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Select the CPU temperature sensor interactively",
	Long: `Shows the discovered temperature sensors in an interactive list and
saves the choice as the preferred sensor. The running panel picks the new
preference up on its next tick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("pick requires an interactive terminal; use the external picker instead")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st := prefs.NewFileStore()
		smp := newSampler(cfg, st)
		smp.Sample()

		entries := sensor.ClassifyAll(smp.Readings())
		if len(entries) == 0 {
			return fmt.Errorf("no temperature sensors found")
		}

		options := make([]huh.Option[string], 0, len(entries))
		for _, e := range entries {
			options = append(options, huh.NewOption(picker.FormatEntry(e), e.Label))
		}

		var selected string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select temperature sensor").
				Options(options...).
				Value(&selected),
		))
		if err := form.Run(); err != nil {
			return err
		}

		if err := st.Save(selected); err != nil {
			return err
		}
		fmt.Printf("Sensor preference saved: %s\n", selected)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
