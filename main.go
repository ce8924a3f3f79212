package main

import (
	"tptgen/cmd"

	_ "github.com/alexbrainman/odbc"
)

func main() {
	cmd.Execute()
}
