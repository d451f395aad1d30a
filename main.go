package main

import "github.com/RyanBlaney/emotion-drift/cmd"

func main() {
	cmd.Execute()
}
