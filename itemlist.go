package main

import (
	"log"
	"os"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		// already shown to the user by the prompter
		if app.IsRecoverable(err) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
