package main

import (
	"log"
	"os"
)

func main() {
	if err := makeDemoCommand().Execute(); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}
