package main

import "github.com/sarchlab/cohort/cohort/cmd"

func main() {
	cmd.Execute()
}
