package main

import (
	"os"

	"github.com/phanxgames/bubble/internal/preset"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Print the active preset as YAML",
	Long: `Print the active preset as YAML with every default filled in.
Without --preset this prints the built-in vibrant-energy preset, which is
a good starting point for a custom one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPreset(viper.GetString("preset"))
		if err != nil {
			return err
		}
		out, err := preset.Marshal(p)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
