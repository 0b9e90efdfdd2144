package main

import (
	"github.com/tsiemens/embedviz/cmd"
)

func main() {
	cmd.Execute()
}
