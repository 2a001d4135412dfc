package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/cmd"
)

func main() {
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
