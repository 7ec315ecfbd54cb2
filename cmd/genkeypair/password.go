package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// getPassword reads a line from the terminal without echoing it. The
// terminal state is restored if the process is interrupted meanwhile.
func getPassword(prompt string) ([]byte, error) {
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return nil, errors.Wrap(err, "stdin is not a terminal")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	go func() {
		if _, ok := <-c; ok {
			_ = term.Restore(int(syscall.Stdin), initialTermState)
			os.Exit(1)
		}
	}()

	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return password, nil
}
