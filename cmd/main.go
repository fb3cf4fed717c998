// cmd/main.go
package main

import cmd "github.com/mwiater/benchtab/cmd/benchtab"

// main starts the benchtab CLI by delegating to the cobra root command
// defined in the benchtab package.
func main() {
	cmd.Execute()
}
