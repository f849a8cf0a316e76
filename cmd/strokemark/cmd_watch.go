package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/project/watcher"
)

var watchDelay time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run cleanup whenever the project file changes",
	Long: `Watches the project file and rebuilds it after every change, saving the
result. Writes made by the rebuild itself are recognised and do not trigger
another round. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDelay, "delay", watcher.DefaultDelay, "Quiet period before a change is processed")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	path, err := projectFile()
	if err != nil {
		return err
	}

	w, err := watcher.New(path, watcher.WithDelay(watchDelay), watcher.WithLogger(logger.Named("watcher")))
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		out, err := cleanupProject(path, true)
		if err != nil {
			logger.Error("cleanup failed", zap.String("path", path), zap.Error(err))
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), out.Report)
	}

	logger.Info("watching project", zap.String("path", w.Path()))
	rebuild()
	err = w.Run(ctx, func(ev watcher.Event) error {
		if ev.Op.Has(watcher.OpRemove) {
			logger.Warn("project file removed", zap.String("path", ev.Path))
			return nil
		}
		rebuild()
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
