package main

import (
	"github.com/harborlane/freightflow-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
