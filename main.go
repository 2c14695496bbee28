package main

import "github.com/mmuldo/recolor/cmd"

func main() {
	cmd.Execute()
}
