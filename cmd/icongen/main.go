// Command icongen writes the PWA icons of the task manager web client.
package main

import (
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/tasklist-server/internal/icon"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fs := pflag.NewFlagSet("icongen", pflag.ExitOnError)
	out := fs.String("out", ".", "output directory")
	sizes := fs.IntSlice("sizes", []int{192, 512}, "icon sizes in pixels")
	fs.Parse(os.Args[1:])

	if err := os.MkdirAll(*out, 0755); err != nil {
		logger.Fatal("Failed to create output directory", zap.String("dir", *out), zap.Error(err))
	}

	for _, size := range *sizes {
		path, err := icon.WriteFile(*out, size)
		if err != nil {
			logger.Fatal("Failed to write icon", zap.Int("size", size), zap.Error(err))
		}
		logger.Info("Created icon", zap.String("path", path), zap.Int("size", size))
	}
	logger.Info("Icons generated successfully", zap.Int("count", len(*sizes)))
}
