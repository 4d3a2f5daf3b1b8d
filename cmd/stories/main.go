package main

import (
	"log"

	"github.com/soapboxsocial/stories/cmd/stories/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
