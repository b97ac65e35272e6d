// Command stitcher joins overlapping images and exposes the feature and
// focus tooling the stitcher is built on.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"img-stitcher/internal/accel"
	"img-stitcher/internal/accel/cvaccel"
	"img-stitcher/internal/version"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel   string
	cpuProfile string
	openCV     bool
}

func (g *globalFlags) accelerator() accel.Accelerator {
	if g.openCV {
		return cvaccel.New()
	}
	return accel.NewSoftware()
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var prof interface{ Stop() }

	root := &cobra.Command{
		Use:           "stitcher",
		Short:         "Stitch overlapping scans into one image",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(g.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

			if g.cpuProfile != "" {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath(g.cpuProfile), profile.NoShutdownHook, profile.Quiet)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&g.cpuProfile, "cpuprofile", "", "write a CPU profile into this directory")
	pf.BoolVar(&g.openCV, "opencv", false, "use the OpenCV accelerator")

	root.AddCommand(
		newStitchCmd(g),
		newFeaturesCmd(g),
		newFocusCmd(g),
		newFragmentsCmd(g),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
