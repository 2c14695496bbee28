package cmd

import (
	"fmt"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette IMAGE",
	Short: "Prints the named palette of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, e := models.Load(cmd.Context())
		if e != nil {
			return e
		}

		img, e := image.Load(args[0])
		if e != nil {
			return e
		}

		p, e := palette.Extract(img, model, paletteOptions())
		if e != nil {
			return e
		}

		for _, n := range p.Names() {
			c := p[n].Std()
			fmt.Fprintf(cmd.OutOrStdout(), "\033[38;2;%d;%d;%dm%s\033[0m = %s\n", c.R, c.G, c.B, n, p[n])
		}
		return nil
	},
}

// modelCmd represents the model command
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Prints the cluster model in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := models.Load(cmd.Context())
		if e != nil {
			return e
		}
		for i, l := range m.Labels {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", i, l, m.Centers[i])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(modelCmd)

	rootCmd.PersistentFlags().IntP("colors", "n", 16, "number of colors images are quantized to")
	rootCmd.PersistentFlags().StringSlice("names", []string{"red", "blue"}, "ordered palette names to compare")
	rootCmd.PersistentFlags().String("quantizer", "median", "palette quantizer (median, kmeans)")

	viper.BindPFlag("colors", rootCmd.PersistentFlags().Lookup("colors"))
	viper.BindPFlag("names", rootCmd.PersistentFlags().Lookup("names"))
	viper.BindPFlag("quantizer", rootCmd.PersistentFlags().Lookup("quantizer"))
}
