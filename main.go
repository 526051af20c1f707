package main

import "github.com/naka-gawa/git-changelog/cmd"

func main() {
	cmd.Execute()
}
