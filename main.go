package main

import (
	"log"

	"github.com/ferryhill/kanbord/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
