// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - conversion between decimal value strings and the
// native base unit used for all pool accounting
package currency

import (
	"github.com/bitmark-inc/buybackd/fault"
)

// DecimalPlaces - fixed point scale of the native unit
const DecimalPlaces = 8

// one whole unit in base units
const oneUnit = 100000000

// ParseUnits - convert a decimal string to a base unit value
//
// i.e. "1.5" converts to uint64(150000000)
//
// strict: rejects empty strings, multiple decimal points, any
// non-digit characters and more than DecimalPlaces decimals
func ParseUnits(s string) (uint64, error) {

	if "" == s || "." == s {
		return 0, fault.InvalidUnitAmount
	}

	value := uint64(0)
	point := false
	decimals := 0

	for _, b := range []byte(s) {
		switch {
		case b >= '0' && b <= '9':
			if point {
				decimals += 1
				if decimals > DecimalPlaces {
					return 0, fault.InvalidUnitAmount
				}
			}
			d := uint64(b - '0')
			if value > (^uint64(0)-d)/10 {
				return 0, fault.InvalidUnitAmount
			}
			value = value*10 + d
		case '.' == b:
			if point {
				return 0, fault.InvalidUnitAmount
			}
			point = true
		default:
			return 0, fault.InvalidUnitAmount
		}
	}

	for decimals < DecimalPlaces {
		if value > ^uint64(0)/10 {
			return 0, fault.InvalidUnitAmount
		}
		value *= 10
		decimals += 1
	}

	return value, nil
}

// String - format a base unit value as a decimal string
func String(value uint64) string {
	whole := value / oneUnit
	fraction := value % oneUnit

	buffer := make([]byte, 0, 30)
	buffer = appendUint(buffer, whole)
	buffer = append(buffer, '.')

	divisor := uint64(oneUnit / 10)
	for divisor > 0 {
		buffer = append(buffer, byte('0'+fraction/divisor))
		fraction %= divisor
		divisor /= 10
	}

	return string(buffer)
}

func appendUint(buffer []byte, n uint64) []byte {
	if 0 == n {
		return append(buffer, '0')
	}
	digits := make([]byte, 0, 20)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i -= 1 {
		buffer = append(buffer, digits[i])
	}
	return buffer
}
