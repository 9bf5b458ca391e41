package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-landing/app/service"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page document to stdout or a file",
	RunE: func(c *cobra.Command, _ []string) error {
		mustLoadConfig()
		return runRender(c.Context(), mustCreateLandingService(), renderOutput, c.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the document to this file instead of stdout")
}

func runRender(ctx context.Context, landingService *service.LandingService, output string, stdout io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	defer func() {
		entry := logrus.WithField("job", "render").WithField("latency", time.Since(start).String())
		if err != nil {
			entry.WithError(err).Error("render_failed")
			return
		}
		entry.Info("render_completed")
	}()

	w := stdout
	if output != "" {
		f, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", output, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", output, closeErr)
			}
		}()
		w = f
	}

	return landingService.Render(ctx, w)
}
