package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spanforge/spanforge/pkg/bridge"
)

// newLayoutCmd creates the layout command, which prints the derived layout
// without building any geometry. Useful for checking girder arrangements
// before a full generate run.
func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [config.toml]",
		Short: "Print the derived bridge layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) == 1 {
				configPath = args[0]
			}

			logger := loggerFromContext(cmd.Context())
			params, err := loadParams(configPath, logger)
			if err != nil {
				return err
			}

			layout := bridge.ComputeLayout(params)

			fmt.Println()
			fmt.Println(StyleTitle.Render("Derived layout"))
			printKV("Deck width", fmt.Sprintf("%.0f mm", layout.DeckWidth))
			printKV("Deck elevation", fmt.Sprintf("%.0f mm (girder depth)", layout.DeckZ))
			printKV("Parapet top", fmt.Sprintf("%.0f mm", layout.DeckZ+params.Deck.Thickness+params.Parapet.Height))

			positions := make([]string, len(layout.GirderY))
			for i, y := range layout.GirderY {
				positions[i] = fmt.Sprintf("%+.0f", y)
			}
			printKV("Girder Y positions", strings.Join(positions, ", ")+" mm")

			parapetZ := layout.DeckZ + params.Deck.Thickness
			halfW := layout.DeckWidth / 2
			printKV("Parapet Y positions", fmt.Sprintf("%+.0f, %+.0f mm (at Z %.0f mm)",
				-halfW-params.Parapet.Width/2, halfW-params.Parapet.Width/2, parapetZ))

			if layout.SkewAngle != 0 {
				fmt.Printf("  %s %s\n", StyleWarning.Render(iconWarning),
					StyleDim.Render(fmt.Sprintf("skew angle %.1f° is recorded but not applied to geometry", layout.SkewAngle)))
			}
			return nil
		},
	}
}
