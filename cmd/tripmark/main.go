package main

import (
	"context"

	"github.com/hzafar/tripmark/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
