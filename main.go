package main

import "github.com/Davharepriyanka/CSV-Analyzer-Dashboard/cmd"

func main() {
	cmd.Execute()
}
