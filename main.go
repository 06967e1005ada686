package main

import (
	"fmt"
	"os"

	"conlang/app"
)

func main() {
	cmd := app.AllCommands()
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
