// cmd/alnwin/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"alnwin/internal/app"
	"alnwin/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var cfgErr *app.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
