// Package commands implements the flexdump CLI: it loads a scene file,
// runs the layout solver at a given viewport size and prints the resolved
// rectangles as JSON.
package commands

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fluentkit/fluent"
	"github.com/fluentkit/fluent/classes"
	"github.com/fluentkit/fluent/flex"
	"github.com/fluentkit/fluent/geom"
)

const version = "0.1.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	flagWidth   float32
	flagHeight  float32
	flagClasses string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "flexdump <scene.toml>",
	Short:   "Solve a flex layout scene and dump the rectangles as JSON",
	Args:    cobra.ExactArgs(1),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := zap.NewNop()
		if flagVerbose {
			dev, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer dev.Sync()
			log = dev
		}

		cfg, err := fluent.LoadConfig(flagConfig)
		if err != nil {
			return err
		}

		scene, err := LoadScene(args[0])
		if err != nil {
			return err
		}
		if flagClasses != "" {
			// Appended classes win over the scene file's.
			scene.Classes += " " + flagClasses
		}

		avail := geom.Size{W: flagWidth, H: flagHeight}
		log.Debug("solving scene",
			zap.String("path", args[0]),
			zap.Int("items", len(scene.Items)),
			zap.Float32("width", avail.W),
			zap.Float32("height", avail.H))

		dump := Solve(scene, avail, cfg.BreakpointConfig())

		out, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float32Var(&flagWidth, "width", 800, "viewport width in pixels")
	rootCmd.Flags().Float32Var(&flagHeight, "height", 600, "viewport height in pixels")
	rootCmd.Flags().StringVar(&flagClasses, "classes", "", "extra container classes appended to the scene's")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "fluent.toml", "config file path")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Rect is one placed item in the dump output.
type Rect struct {
	Index  int     `json:"index"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Dump is the JSON document flexdump emits.
type Dump struct {
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Lines   int     `json:"lines"`
	Wrapped bool    `json:"wrapped"`
	Rects   []Rect  `json:"rects"`
}

// Solve resolves the scene's classes for the viewport width and runs the
// solver.
func Solve(scene Scene, avail geom.Size, bp classes.BreakpointConfig) Dump {
	containerClasses := scene.computedClasses()
	containerProps := containerClasses.ResolveFor(avail.W, bp)
	cfg := containerProps.Config(flex.Config{})

	items := make([]flex.Item, len(scene.Items))
	for i, si := range scene.Items {
		item := flex.Item{Measured: geom.Size{W: si.Width, H: si.Height}}
		itemClasses := si.computedClasses()
		items[i] = itemClasses.ResolveFor(avail.W, bp).Item(item)
	}

	result := flex.Solve(avail, items, cfg)

	dump := Dump{
		Width:   avail.W,
		Height:  avail.H,
		Lines:   result.Lines,
		Wrapped: result.Wrapped(),
		Rects:   make([]Rect, len(result.Rects)),
	}
	for i, r := range result.Rects {
		dump.Rects[i] = Rect{Index: i, X: r.X, Y: r.Y, Width: r.W, Height: r.H}
	}
	return dump
}
