package main

import (
	"time"

	"github.com/Bandsberg/fornjot/internal/preview"
	"github.com/Bandsberg/fornjot/render"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newPreviewCmd(logger *log.Logger, flags *rootFlags) *cobra.Command {
	var (
		output string
		watch  bool
		view   = preview.DefaultView
	)
	cmd := &cobra.Command{
		Use:   "preview MODEL.toml",
		Short: "Render a shaded PNG snapshot of a model",
		Long: `Renders an isometric, shaded PNG snapshot of a model. With --watch the
snapshot is rendered again every time the model file is saved, until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			draw := func() error {
				return previewModel(logger, path, output, flags.tolerance, view)
			}
			if !watch {
				return draw()
			}
			mw, err := newModelWatcher(logger, path, 100*time.Millisecond)
			if err != nil {
				return err
			}
			if err := draw(); err != nil {
				logger.Error("preview failed", "err", err)
			}
			logger.Info("watching model", "path", path)
			return mw.Run(cmd.Context(), func() {
				if err := draw(); err != nil {
					logger.Error("preview failed", "err", err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output PNG file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "render again whenever the model file changes")
	cmd.Flags().IntVar(&view.Width, "width", view.Width, "image width in pixels")
	cmd.Flags().IntVar(&view.Height, "height", view.Height, "image height in pixels")
	return cmd
}

func previewModel(logger *log.Logger, path, output string, flagTol float64, view preview.View) error {
	shape, tol, err := loadModel(logger, path, flagTol)
	if err != nil {
		return err
	}
	r, err := render.NewShapeRenderer(shape, tol)
	if err != nil {
		return err
	}
	defer r.Close()
	model, err := render.RenderAll(r)
	if err != nil {
		return err
	}
	if err := preview.SavePNG(output, model, view); err != nil {
		return err
	}
	logger.Info("wrote preview", "path", output, "triangles", len(model))
	return nil
}
