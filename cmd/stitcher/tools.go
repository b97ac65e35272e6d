package main

import (
	"fmt"
	"os"
	"path/filepath"

	"img-stitcher/internal/accel"
	"img-stitcher/internal/features"
	"img-stitcher/internal/imageio"
	"img-stitcher/internal/raster"
	"img-stitcher/pkg/colorutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newFeaturesCmd(g *globalFlags) *cobra.Command {
	var (
		in, out   string
		threshold int
		radius    int
		direction string
	)

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Detect corners and mark them on the image",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := features.ParseDirection(direction)
			if err != nil {
				return err
			}
			img, err := imageio.Load(in)
			if err != nil {
				return err
			}
			gray, err := img.Gray(g.accelerator())
			if err != nil {
				return err
			}

			var points []features.Point
			if radius > 0 {
				points = features.Search(gray, gray.Bounds(), threshold, dir, radius, 0)
			} else {
				points = features.Detect(gray, gray.Bounds(), threshold, dir)
			}
			fmt.Printf("%d points\n", len(points))

			if out == "" {
				return nil
			}
			if err := features.DrawMarkers(img, points, colorutil.Magenta); err != nil {
				return err
			}
			return imageio.Save(out, img)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input image")
	f.StringVar(&out, "out", "", "write the image with marked points here")
	f.IntVar(&threshold, "threshold", features.DefaultThreshold, "corner intensity threshold")
	f.IntVar(&radius, "radius", features.DefaultRadius, "suppression radius, 0 keeps every corner")
	f.StringVar(&direction, "direction", "horizontal", "descriptor orientation")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newFocusCmd(g *globalFlags) *cobra.Command {
	var in, out, kernel string

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Print the Laplacian standard deviation of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := accel.KernelByName(kernel)
			if err != nil {
				return err
			}
			img, err := imageio.Load(in)
			if err != nil {
				return err
			}

			res, err := accel.Laplacian(g.accelerator(), img.Pix, img.Width, img.Height, img.BytesPerPixel, k)
			if err != nil {
				return err
			}
			fmt.Printf("%.4f\n", res.StdDev)

			if out == "" {
				return nil
			}
			edges, err := raster.FromBytes(res.Pix, res.Width, res.Height, 1)
			if err != nil {
				return err
			}
			return imageio.Save(out, edges)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input image")
	f.StringVar(&out, "out", "", "write the edge response here")
	f.StringVar(&kernel, "kernel", "laplace8", "laplace4, laplace8 or laplace12")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newFragmentsCmd(g *globalFlags) *cobra.Command {
	var in, rectsPath, dir string

	cmd := &cobra.Command{
		Use:   "fragments",
		Short: "Crop the rectangles listed in a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imageio.Load(in)
			if err != nil {
				return err
			}
			rects, err := imageio.ReadRects(rectsPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			acc := g.accelerator()
			for i, r := range rects {
				clipped := img.Bounds().Intersect(r)
				if clipped.Empty() {
					log.WithField("rect", r).Warn("fragment outside image, skipped")
					continue
				}
				frag, err := img.Crop(acc, clipped)
				if err != nil {
					return err
				}
				if err := imageio.Save(filepath.Join(dir, fmt.Sprintf("fragment_%03d.png", i)), frag); err != nil {
					return err
				}
			}
			log.WithField("count", len(rects)).Info("fragments written")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input image")
	f.StringVar(&rectsPath, "rects", "", "JSON file of [x0, y0, x1, y1] rectangles")
	f.StringVar(&dir, "dir", "fragments", "output directory")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("rects")
	return cmd
}
