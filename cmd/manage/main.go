package main

import "warehouse/internal/cmd"

func main() {
	cmd.Execute()
}
