package main

import "github.com/sjanel/sudoku-solver/cmd"

func main() {
	cmd.Execute()
}
