package main

import (
	"fmt"

	"img-stitcher/internal/config"
	"img-stitcher/internal/features"
	"img-stitcher/internal/imageio"
	"img-stitcher/internal/match"
	"img-stitcher/internal/stitch"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newStitchCmd(g *globalFlags) *cobra.Command {
	var (
		pathA, pathB, out string
		pairsOut          string
		axis              string
		configPath        string
		local             bool
		pad               int
	)

	cmd := &cobra.Command{
		Use:   "stitch",
		Short: "Stitch image b onto image a",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("axis") {
				dir, err := features.ParseDirection(axis)
				if err != nil {
					return err
				}
				cfg.Stitch.Axis = dir
			}
			if cmd.Flags().Changed("local") {
				cfg.Stitch.Local = &local
			}
			if cfg.Stitch.OpenCV {
				g.openCV = true
			}

			a, err := imageio.Load(pathA)
			if err != nil {
				return err
			}
			b, err := imageio.Load(pathB)
			if err != nil {
				return err
			}

			acc := g.accelerator()
			res, err := stitch.Stitch(cmd.Context(), acc, a, b, cfg.Options())
			if err != nil {
				return fmt.Errorf("stitch %s + %s: %w", pathA, pathB, err)
			}
			img := res.Image
			if pad > 0 {
				img = img.Pad(pad)
			}
			if err := imageio.Save(out, img); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"out":  out,
				"size": fmt.Sprintf("%dx%d", img.Width, img.Height),
			}).Info("saved")

			if pairsOut != "" {
				vis, err := match.DrawPairs(a, b, res.Pairs)
				if err != nil {
					return err
				}
				if err := imageio.Save(pairsOut, vis); err != nil {
					return err
				}
			}

			fmt.Printf("displacement: %.2f %.2f (%d pairs)\n", res.Displacement.X, res.Displacement.Y, len(res.Pairs))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&pathA, "a", "", "first image (left or top)")
	f.StringVar(&pathB, "b", "", "second image (right or bottom)")
	f.StringVar(&out, "out", "stitched.png", "output image")
	f.StringVar(&pairsOut, "pairs", "", "also render the matched pairs to this image")
	f.StringVar(&axis, "axis", "horizontal", "stitching axis: horizontal or vertical")
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.BoolVar(&local, "local", false, "refine placement with per-line vectors")
	f.IntVar(&pad, "pad", 0, "surround the output with a border of this width")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
