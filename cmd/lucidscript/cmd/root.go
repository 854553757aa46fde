package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lucidscript/cmd/lucidscript/cmd/dev"
	"lucidscript/cmd/lucidscript/cmd/export"
	"lucidscript/cmd/lucidscript/cmd/migrate"
	"lucidscript/cmd/lucidscript/cmd/serve"
	"lucidscript/cmd/lucidscript/cmd/transcribe"
	"lucidscript/cmd/lucidscript/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lucidscript",
	Short: "Turn speech into formatted Word documents",
	Long: `LucidScript transcribes audio, video or YouTube links with Whisper and
renders the result as a standard or deposition style .docx document.

Settings are read from the environment and from a .env file in the working
directory. Command flags override them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(dev.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
