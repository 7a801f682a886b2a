package main

import (
	"os"

	"github.com/thenoetrevino/projectmanager/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
