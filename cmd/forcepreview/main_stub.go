//go:build ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The force preview is built on raylib and is not available with the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run without tags: `go run ./cmd/forcepreview`.")
	os.Exit(2)
}
