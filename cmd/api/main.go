package main

import (
	"context"
	"os"

	"pet-profiler/internal/cli"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

// @title Pet Profiler API
// @version 1.0
// @description Scan de mascotas, notas, galería, chat con experto y recomendaciones.
// @BasePath /
func main() {
	root := cli.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
