//go:build cli
// +build cli

package main

import (
	_ "inventorypro.GO/custom"

	"inventorypro.GO/cmd"
	"inventorypro.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
