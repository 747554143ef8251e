package main

import (
	"log"

	"github.com/exam-portal/exam-portal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
