package cmd

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hearth-sh/hearth/internal/consts"
)

const starterConfig = `# hearth configuration
# Sources resolve against the resource root ("files" next to this file),
# targets against your home directory.
root: files

resources:
  - name: example-dotfile
    type: symlink
    params:
      source: hello.txt
      target: hello.txt
      force: false

  # - name: htop
  #   type: package
  #   when: os == "linux"
`

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a configuration directory",
	Long:  `Creates a configuration directory with a starter hearth.yaml and a files/ resource root.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			var err error
			dir, err = consts.DefaultConfigDir()
			if err != nil {
				pterm.Error.Printf("Cannot determine config directory: %v\n", err)
				os.Exit(1)
			}
		}

		pterm.Info.Printf("Initializing configuration directory %s...\n", dir)
		if err := os.MkdirAll(filepath.Join(dir, consts.FilesDirName), 0755); err != nil {
			pterm.Error.Printf("Cannot create directory: %v\n", err)
			os.Exit(1)
		}

		cfgPath := filepath.Join(dir, consts.DefaultConfigName)
		if _, err := os.Stat(cfgPath); err == nil {
			pterm.Warning.Printf("%s already exists, skipping\n", consts.DefaultConfigName)
			return
		}
		if err := os.WriteFile(cfgPath, []byte(starterConfig), 0644); err != nil {
			pterm.Error.Printf("Cannot write %s: %v\n", consts.DefaultConfigName, err)
			os.Exit(1)
		}
		pterm.Success.Printf("Created %s\n", cfgPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
