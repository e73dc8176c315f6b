// Package main walks through every keyline primitive on a real terminal.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dshills/keyline"
	"github.com/dshills/keyline/dispatch"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("# Selection")
	fmt.Println("How is your day?")
	choice, err := keyline.Selection(
		[]string{"Good", "Bad", "I can't remember"},
		keyline.WithMarkers(" > ", "> "),
		keyline.WithWrap(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Result:", choice)

	fmt.Println()
	fmt.Println("# Editable input")
	name, err := keyline.Input("Can't edit this: ", keyline.WithInitialText("Edit this"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Result:", name)

	fmt.Println()
	fmt.Println("# Masked input")
	secret, err := keyline.Masked("Can't see what you type: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Result:", secret)

	fmt.Println()
	fmt.Println("# Scrolling display (type below; 'quit' exits)")
	if err := runDisplay(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println()
	fmt.Println("# Dispatch registry")
	runDispatch()
	return 0
}

func runDisplay() error {
	quit := make(chan struct{})
	var d *keyline.Display
	d = keyline.New().Display("you: ", keyline.WithCapacity(4),
		keyline.WithSubmitHandler(func(line string) {
			if line == "quit" {
				close(quit)
				return
			}
			d.Push("you said: " + line)
		}))

	if err := d.Start(); err != nil {
		return err
	}
	d.Push("hello", "type something")

	select {
	case <-quit:
	case <-time.After(2 * time.Minute):
	}
	return d.Stop(true)
}

func runDispatch() {
	reg := dispatch.New()
	reg.MustRegister("add", func(a, b int) int { return a + b })
	reg.MustRegister("add", func(a, b string) int {
		n, _ := strconv.Atoi(a + b)
		return n
	})

	out, _ := reg.Call("add", 2, 3)
	fmt.Println("Result 1:", out[0])
	out, _ = reg.Call("add", "2", "3")
	fmt.Println("Result 2:", out[0])
}
