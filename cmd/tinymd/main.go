package main

import "os"

// Build metadata, set at build time via ldflags:
//
//	go build -ldflags "-X main.Version=1.0.0 -X 'main.Authors=Jane Doe'"
var (
	Version  = "dev"
	Authors  = "unknown"
	Homepage = "https://github.com/alnah/go-tinymd"
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}
