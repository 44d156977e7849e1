// Idiomatic entrypoint for the Cobra CLI; real handling lives in cmd/root.go.

package main

import (
	"github.com/schedsim/schedsim/cmd"
)

func main() {
	cmd.Execute()
}
