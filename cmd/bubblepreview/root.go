package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/phanxgames/bubble"
	"github.com/phanxgames/bubble/internal/logger"
	"github.com/phanxgames/bubble/internal/preset"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// envKeyReplacer maps "window.width" to BUBBLE_WINDOW_WIDTH.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

var rootCmd = &cobra.Command{
	Use:           "bubblepreview",
	Short:         "Preview the animated like button",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(logger.Config{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		})
	},
	RunE: runPreview,
}

func execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("bubblepreview")
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./bubblepreview.yaml if present)")
	pf.String("preset", "", "preset YAML file (default: built-in vibrant-energy)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	f := rootCmd.Flags()
	f.Int("width", 480, "window width")
	f.Int("height", 480, "window height")
	f.Float64("scale", 1, "button scale")
	f.Bool("fps", false, "show FPS and TPS")
	f.String("script", "", "JSON test script to run; the window closes when it finishes")
	f.String("screenshots", "screenshots", "directory for script screenshots")
	f.Uint64("seed", 0, "seed for heart trajectories (0: random)")

	mustBind("preset", pf.Lookup("preset"))
	mustBind("log.level", pf.Lookup("log-level"))
	mustBind("log.format", pf.Lookup("log-format"))
	mustBind("window.width", f.Lookup("width"))
	mustBind("window.height", f.Lookup("height"))
	mustBind("window.scale", f.Lookup("scale"))
	mustBind("window.fps", f.Lookup("fps"))
	mustBind("script", f.Lookup("script"))
	mustBind("screenshots", f.Lookup("screenshots"))
	mustBind("seed", f.Lookup("seed"))

	rootCmd.AddCommand(presetCmd)
}

// initConfig wires the config file and BUBBLE_* environment variables.
// Precedence: flag > env > file > default.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("bubblepreview")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BUBBLE")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
		}
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, err := loadPreset(viper.GetString("preset"))
	if err != nil {
		return err
	}

	button := bubble.New(p.Layout, p.Scheme)
	if seed := viper.GetUint64("seed"); seed != 0 {
		button.SetRand(rand.New(rand.NewPCG(seed, seed)))
	}

	stage := bubble.NewStage(button)
	stage.Logger = log.Logger.With().Str("preset", p.Name).Logger()
	stage.Scale = viper.GetFloat64("window.scale")
	stage.ClearColor = bubble.Color{R: 0.07, G: 0.05, B: 0.09, A: 1}
	stage.ScreenshotDir = viper.GetString("screenshots")

	var runner *bubble.TestRunner
	if path := viper.GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err = bubble.LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		stage.SetTestRunner(runner)
		stage.ExitOnScriptDone = true
	}

	err = bubble.Run(stage, bubble.RunConfig{
		Title:   "Bubble: " + p.Name,
		Width:   viper.GetInt("window.width"),
		Height:  viper.GetInt("window.height"),
		ShowFPS: viper.GetBool("window.fps"),
	})
	if err != nil {
		return err
	}
	if runner != nil && len(runner.Failures()) > 0 {
		return fmt.Errorf("script: %d expectation(s) failed", len(runner.Failures()))
	}
	return nil
}

// loadPreset reads path, or returns the built-in preset when path is empty.
func loadPreset(path string) (*preset.Preset, error) {
	if path == "" {
		return preset.Default(), nil
	}
	return preset.Load(path)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
