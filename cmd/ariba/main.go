// cmd/ariba/main.go
package main

import (
	"ariba/internal/app"
	"ariba/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
