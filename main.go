package main

import "github.com/inovacc/findstar/cmd"

func main() {
	cmd.Execute()
}
