// Command hx_rating rates bare tube bundle heat exchangers from case files.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
