// Command mermshot renders Mermaid diagrams embedded in Markdown to images.
package main

import "github.com/gaurav-prasanna/mermshot/cmd"

func main() {
	cmd.Execute()
}
