// Command sitectl inspects and edits the site content key space from the
// command line, against the same storage backend the API server uses.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd(openStore).Execute(); err != nil {
		os.Exit(1)
	}
}
