package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/render"
	"hdrguard/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactively toggle sentinels and watch the table resolve",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

var uiEnv envFlags

func init() {
	uiEnv.register(uiCmd)
	uiCmd.Flags().Bool("print-header", false, "render the fragment for the final probe state on exit")
}

func runUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("ui needs a terminal; use resolve for scripted output")
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	env, err := uiEnv.environment(bag)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, bag)

	model := ui.NewModel(env.Probes)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}

	if printHeader, _ := cmd.Flags().GetBool("print-header"); printHeader {
		m, ok := final.(ui.Model)
		if !ok {
			return fmt.Errorf("unexpected final model type")
		}
		return render.WriteHeader(os.Stdout, guard.Env{Probes: m.FinalProbes()})
	}
	return nil
}
