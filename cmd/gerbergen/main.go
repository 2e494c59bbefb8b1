// Command gerbergen generates Gerber (RS-274X) files. It reproduces the
// Ucamco specification examples and builds boards described by YAML job
// files.
package main

func main() {
	Execute()
}
