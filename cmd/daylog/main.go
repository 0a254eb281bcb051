package main

import (
	"context"

	"github.com/faizmokh/daylog/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
