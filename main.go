package main

import (
	"os"

	"github.com/vipcxj/rangetype/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
