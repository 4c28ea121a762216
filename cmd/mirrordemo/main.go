// Command mirrordemo mirrors a UI image element described by a scene file
// and writes a PNG preview.
//
// Usage:
//
//	mirrordemo render scene.yaml -o out.png --scale 4
//	mirrordemo mesh scene.yaml --gpu
//	mirrordemo size --mode quadrant --ppu 100 sprite.png
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/mirror/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
