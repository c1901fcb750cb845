// Package rpnre is a command line tool deciding suffix questions for regular
// expressions in reverse-Polish notation.
//
// Usage:
//
//     echo "ab+c+* b 100" | rpnre        # prints YES
//     rpnre ab+c. b 1                    # prints NO
//     rpnre -i                           # interactive mode
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/rpnre/rpnre/cli"
)

func main() {
	var stop context.CancelFunc
	rpnre.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// cli.Execute() terminates the process, so Done() signals an interrupt
	go func() {
		<-rpnre.SignalContext.Done()
		rpnre.Exit(130)
	}()
	cli.Execute()
}
