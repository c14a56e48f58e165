package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llehouerou/carousel/internal/app"
)

func main() {
	configPath := flag.String("config", "", "config file (default: XDG config dir, then ./config.toml)")
	flag.Parse()

	if err := app.Run(app.Options{ConfigPath: *configPath, ScreenName: "home"}); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
