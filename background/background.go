// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - a framework for placing tasks into the background
package background

// Process - type signature for background process
// and a list of these to start
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop command
type T struct {
	count    int
	finished chan struct{}
	shutdown chan struct{}
}

// Start - launch a list of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		count:    len(processes),
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		go func(p Process) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, register.shutdown)
			// flag for the stop routine to wait for shutdown
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - stop the background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	// trigger shutdown of all background tasks
	close(t.shutdown)

	// wait for all backgrounds to finish
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
