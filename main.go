/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/cardtable/go-card-hand/cmd"

func main() {
	cmd.Execute()
}
