package main

import (
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-solo/console"
)

func main() {
	if os.Getenv("STAGE") != console.StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			panic(err)
		}
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = console.StageDev
	}
	if stage != console.StageDev && stage != console.StageProd {
		panic("stage must be either dev or prod")
	}

	ui := os.Getenv("UI")
	if ui == "" {
		ui = console.UIText
	}

	seed := time.Now().UnixNano()
	if seedEnv := os.Getenv("SEED"); seedEnv != "" {
		parsed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			panic(err)
		}
		seed = parsed
	}

	logFile := mustSetupLog(os.Getenv("LOG_FILE"), stage, ui)
	if logFile != nil {
		defer logFile.Close()
	}

	c := console.NewConsole(
		console.WithStage(stage),
		console.WithUI(ui),
		console.WithSeed(seed),
	)

	if err := c.Run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// Without LOG_FILE logs go to stderr in dev. The screen UI owns the
// terminal, so there they are dropped.
func mustSetupLog(path, stage, ui string) *os.File {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if path == "" {
		if ui == console.UIScreen || stage == console.StageProd {
			log.SetOutput(io.Discard)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(err)
	}
	log.SetOutput(f)
	return f
}
