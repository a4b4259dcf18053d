package main

import "github.com/pzshine/membit-prediction-market-insight/cmd"

func main() {
	cmd.Execute()
}
