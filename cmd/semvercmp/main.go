package main

import (
	"github.com/NVIDIA/semvercmp/pkg/cli"
)

func main() {
	cli.Execute()
}
