// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue system for inter-module communication
package messagebus

// internal constants
const (
	auditQueueSize = 1000
)

// Message - audit and control messages
type Message struct {
	Command    string   // type of the message
	Parameters [][]byte // message data
}

// Queue - a 1:1 queue
type Queue struct {
	c    chan Message
	size int
}

// the exported message queues
type busses struct {
	Audit *Queue // filled by the custodian, drained by the publisher
}

// Bus - all available message queues
var Bus busses

func init() {
	Bus.Audit = &Queue{
		c:    make(chan Message, auditQueueSize),
		size: auditQueueSize,
	}
}

// Send - place a message into the queue
//
// drops the message if the receiver has stalled; the persistent event
// log is the authoritative record, the bus is best effort delivery
func (queue *Queue) Send(command string, parameters ...[]byte) {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
	default:
	}
}

// Chan - channel to read from the queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Drop - remove and discard any queued messages
func (queue *Queue) Drop() {
loop:
	for {
		select {
		case <-queue.c:
		default:
			break loop
		}
	}
}
