// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/buybackd/fault"
)

// Connection - a validated IP and port pair
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - convert a host:port string to a connection
func NewConnection(hostPort string) (*Connection, error) {

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return nil, fault.InvalidIpAddress
	}

	ip := net.ParseIP(strings.Trim(host, " "))
	if nil == ip {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if err != nil {
		return nil, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   ip,
		port: uint16(numericPort),
	}
	return c, nil
}

// NewConnections - convert an array of host:port strings
func NewConnections(hostPorts []string) ([]*Connection, error) {
	if 0 == len(hostPorts) {
		return nil, fault.MissingParameters
	}
	c := make([]*Connection, len(hostPorts))
	for i, hostPort := range hostPorts {
		err := error(nil)
		c[i], err = NewConnection(hostPort)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
//
// prefix is optional and can be empty ("")
// returns prefixed string and true if IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {

	port := strconv.Itoa(int(conn.port))
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - representation for use by the format package
func (conn Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
