package main

import "github.com/trugenie/go-tally-extraction/cmd/extractor/cmd"

func main() {
	cmd.Execute()
}
