package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"hdrguard/internal/diag"
	"hdrguard/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Emit the coordination fragment as C preprocessor text",
	Long:  `Render writes the #define __UAPI_DEF_* fragment a kernel-side header would see for the given probe state`,
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

var renderEnv envFlags

func init() {
	renderEnv.register(renderCmd)
	renderCmd.Flags().String("output", "", "write the fragment to a file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag(maxDiagnostics(cmd))
	env, err := renderEnv.environment(bag)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, bag)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		var buf bytes.Buffer
		if err := render.WriteHeader(&buf, env); err != nil {
			return err
		}
		return os.WriteFile(path, buf.Bytes(), 0o644)
	}
	return render.WriteHeader(os.Stdout, env)
}
