package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/spellcheck/pkg/di"
)

func main() {
	_, cleanup, err := di.InitializeSpellerService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
