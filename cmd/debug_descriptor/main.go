package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"webapp-standalone/core/contextprops"
	"webapp-standalone/core/deploy"

	"github.com/spf13/afero"
)

// Prints the expanded descriptor of an unpacked application directory.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <application dir>", os.Args[0])
	}
	root := os.Args[1]

	props := contextprops.Project(os.Environ())
	fmt.Printf("Context properties: %v\n", props.Names())

	desc, err := deploy.LoadDescriptor(afero.NewOsFs(), root, props)
	if err != nil {
		log.Fatal(err)
	}

	data, _ := json.MarshalIndent(desc, "", "  ")
	fmt.Println(string(data))
}
