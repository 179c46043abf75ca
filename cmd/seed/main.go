package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"oncologyassistant/internal/app/repository"

	log "github.com/sirupsen/logrus"
)

// Выгружает встроенный набор данных в JSON; файл можно отредактировать и указать в SeedFile.
func main() {
	out := flag.String("out", "", "output file (stdout when empty)")
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := writeSeed(w, repository.DefaultSeed()); err != nil {
		log.Fatalf("failed to write seed: %v", err)
	}
	if *out != "" {
		log.WithField("file", *out).Info("seed written")
	}
}

func writeSeed(w io.Writer, seed repository.Seed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(seed)
}
