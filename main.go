package main

import (
	"log"

	"github.com/grigorishin/course-platform-api/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
