package main

import (
	"log"

	"github.com/maksimov/resume-screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
