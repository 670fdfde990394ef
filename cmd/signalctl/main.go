package main

import (
	"log"

	"github.com/cernym46/testys-firebase/cmd/signalctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
