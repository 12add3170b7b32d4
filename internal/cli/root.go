// Package cli wires the resmon commands: the default panel TUI plus the
// one-shot, sensor listing, picker, serve, and history subcommands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goujonmael/resmon/internal/config"
	"github.com/goujonmael/resmon/internal/panel"
	"github.com/goujonmael/resmon/internal/picker"
	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/store"
	"github.com/goujonmael/resmon/internal/sysinfo"
)

var (
	cfgFile    string
	recordFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "resmon",
	Short: "Compact CPU and RAM monitor for the desktop panel",
	Long: `resmon samples CPU utilization, frequency, temperature, and RAM usage
once per tick and renders them as a compact panel line with sparkline
history. The CPU temperature sensor can be chosen in the TUI (m), through
an external picker like rofi or zenity (s), or with the pick subcommand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $XDG_CONFIG_HOME/resmon/config.yaml)")
	rootCmd.Flags().BoolVar(&recordFlag, "record", false,
		"record every snapshot to a daily CSV file")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func newSampler(cfg *config.Config, st prefs.Store) *sampler.Sampler {
	return sampler.New(sysinfo.SystemProvider{}, st, sampler.Config{
		DefaultLabel: cfg.DefaultSensor,
	})
}

// pickerTools maps configured tool names onto the known tool definitions,
// preserving the configured order. Unknown names are skipped.
func pickerTools(cfg *config.Config) []picker.Tool {
	tools := make([]picker.Tool, 0, len(cfg.PickerTools))
	for _, name := range cfg.PickerTools {
		if t, ok := picker.ToolByName(name); ok {
			tools = append(tools, t)
		}
	}
	if len(tools) == 0 {
		tools = picker.DefaultTools
	}
	return tools
}

func runPanel() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := prefs.NewFileStore()
	smp := newSampler(cfg, st)
	bridge := picker.New(st).WithTools(pickerTools(cfg))

	var recorder *store.DiskStore
	if cfg.Record || recordFlag {
		recorder, err = store.New()
		if err != nil {
			return err
		}
	}

	m := panel.New(smp, bridge, st, panel.Options{
		Interval: cfg.Interval,
		WarnTemp: cfg.WarnTemp,
		CritTemp: cfg.CritTemp,
		Recorder: recorder,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running panel: %w", err)
	}
	return nil
}
