//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The interactive maze viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/maze` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless tools: ./cmd/mazegen, ./cmd/mazeshot, ./cmd/mazesurvey.")
	os.Exit(2)
}
