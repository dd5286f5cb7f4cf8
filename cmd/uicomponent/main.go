package main

import "github.com/cameronsjo/uicomponent/internal/cmd"

func main() {
	cmd.Execute()
}
