package main

import "github.com/diogo/vertexchat/internal/commands"

func main() {
	commands.Execute()
}
