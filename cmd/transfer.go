package cmd

import (
	"errors"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
	"github.com/mmuldo/recolor/recolor"
	"github.com/mmuldo/recolor/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Recolors a target image toward a reference image",
	Long: `Recolors the target image so that its named palette colors approach those
of the reference image, then writes the result as a PNG.

  recolor transfer --target photo.jpg --reference mood.png --out photo-recolored.png --method lab`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		method, e := recolor.ParseMethod(viper.GetString("method"))
		if e != nil {
			return e
		}

		model, e := models.Load(cmd.Context())
		if e != nil {
			return e
		}

		target, e := image.Load(targetPath)
		if e != nil {
			return e
		}
		reference, e := image.Load(referencePath)
		if e != nil {
			return e
		}

		opts := paletteOptions()
		tp, e := palette.Extract(target, model, opts)
		if e != nil {
			return e
		}
		rp, e := palette.Extract(reference, model, opts)
		if e != nil {
			return e
		}
		logger.Debug("extracted palettes", "target", tp.Names(), "reference", rp.Names())

		r := recolor.New(models, recolor.WithNames(names()...), recolor.WithLogger(logger))
		res, e := r.Apply(cmd.Context(), method, image.FromImage(target), tp, rp)
		if e != nil && !errors.Is(e, recolor.ErrNoMatchingColors) {
			return e
		}

		if e := image.Save(outPath, res.Image.ToNRGBA()); e != nil {
			return e
		}
		logger.Info("wrote recolored image", "path", outPath, "method", method, "factor", res.Factor)

		rr, e := report.New(viper.GetString("template"))
		if e != nil {
			return e
		}
		return rr.Render(cmd.OutOrStdout(), res, r.Names(), tp, rp)
	},
}

var (
	targetPath    string
	referencePath string
	outPath       string
)

func init() {
	rootCmd.AddCommand(transferCmd)

	transferCmd.Flags().StringVar(&targetPath, "target", "", "image to recolor")
	transferCmd.Flags().StringVar(&referencePath, "reference", "", "image whose palette is approached")
	transferCmd.Flags().StringVarP(&outPath, "out", "o", "recolored.png", "output PNG path")
	transferCmd.Flags().StringP("method", "m", string(recolor.MethodRGB), "recoloring method (rgb, lab)")
	transferCmd.Flags().String("template", "", "pongo2 report template file")
	transferCmd.MarkFlagRequired("target")
	transferCmd.MarkFlagRequired("reference")

	viper.BindPFlag("method", transferCmd.Flags().Lookup("method"))
	viper.BindPFlag("template", transferCmd.Flags().Lookup("template"))
}

func names() []string {
	var out []string
	for _, n := range viper.GetStringSlice("names") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func paletteOptions() palette.Options {
	opts := palette.DefaultOptions()
	if n := viper.GetInt("colors"); n > 0 {
		opts.Colors = n
	}
	if viper.GetString("quantizer") == "kmeans" {
		opts.Quantizer = palette.KMeans{}
	}
	return opts
}
