package main

import "github.com/tekktrik/TekkPort/cmd/parport/cmd"

func main() {
	cmd.Execute()
}
