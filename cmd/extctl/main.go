package main

import (
	"github.com/NVIDIA/extensible/pkg/cli"
)

func main() {
	cli.Execute()
}
