// @title LucidScript API
// @version 1.0
// @description Speech to Word document transcription service.
// @BasePath /
package main

import (
	"lucidscript/cmd/lucidscript/cmd"
)

func main() {
	cmd.Execute()
}
