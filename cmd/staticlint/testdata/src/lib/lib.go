package lib

import (
	"log"
	"os"
)

func Load(path string) {
	if path == "" {
		os.Exit(1) // want `call to os.Exit outside package main`
	}
	if path == "-" {
		log.Fatalf("bad path %q", path) // want `call to log.Fatalf outside package main`
	}
	log.Printf("loading %s", path)
}
