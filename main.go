package main

import (
	"github.com/they4kman/minegrid/cmd"
)

func main() {
	cmd.Execute()
}
