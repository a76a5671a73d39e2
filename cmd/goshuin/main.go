package main

import (
	"github.com/kurumiimari/goshuin/cmd/goshuin/cmd"
)

func main() {
	cmd.Execute()
}
