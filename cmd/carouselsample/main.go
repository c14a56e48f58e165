// Command carouselsample shows the sample screen with a fixed set of cards.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llehouerou/carousel/internal/app"
)

var identifiers = []string{"image1", "image2", "image3", "image4"}

func main() {
	configPath := flag.String("config", "", "config file (default: XDG config dir, then ./config.toml)")
	flag.Parse()

	err := app.Run(app.Options{
		ConfigPath:  *configPath,
		ScreenName:  "sample",
		Identifiers: identifiers,
	})
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
