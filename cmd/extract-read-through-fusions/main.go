// cmd/extract-read-through-fusions/main.go
package main

import (
	"ariba/internal/appshell"
	"ariba/internal/readthroughapp"
)

func main() { appshell.Main(readthroughapp.RunContext) }
