package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/avltree/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "avltree:", err)
		os.Exit(1)
	}
}
