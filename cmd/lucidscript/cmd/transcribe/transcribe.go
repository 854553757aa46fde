package transcribe

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"lucidscript/cmd/lucidscript/cmd/cmdutil"
	"lucidscript/internal/app/converter"
	"lucidscript/internal/app/model"
)

var (
	style         string
	language      string
	translate     bool
	diarize       bool
	parallel      int
	forceProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&style, "style", "s", model.StyleStandard, "document style: standard or deposition")
	Cmd.Flags().StringVarP(&language, "language", "l", "", "language code, auto-detected when empty")
	Cmd.Flags().BoolVarP(&translate, "translate", "t", false, "translate to English")
	Cmd.Flags().BoolVarP(&diarize, "diarize", "d", false, "detect speakers (deposition style only)")
	Cmd.Flags().IntVarP(&parallel, "parallel", "j", 1, "files exported at once")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <files...>",
	Short: "Export local audio or video files to Word documents",
	Long: `Export local audio or video files to Word documents

- Each file is transcribed with the configured Whisper provider
- Documents are written to the output directory and recorded in history`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if style != model.StyleStandard && style != model.StyleDeposition {
			return fmt.Errorf("invalid --style %q: must be standard or deposition", style)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		a, cleanup, err := cmdutil.InitApp(ctx, nil)
		if err != nil {
			return err
		}
		defer cleanup()

		items := a.Converter.ExportFiles(ctx, args, style, converter.Input{
			Language:  language,
			Translate: translate,
			Diarize:   diarize,
		}, parallel, converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(forceProgress),
			Writer:  cmd.ErrOrStderr(),
		})

		failed := 0
		out := cmd.OutOrStdout()
		for _, item := range items {
			if item.Err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %v\n", item.Path, item.Err)
				continue
			}
			fmt.Fprintf(out, "OK   %s -> %s\n", item.Path, item.Result.DocxPath)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(items))
		}
		return nil
	},
}
