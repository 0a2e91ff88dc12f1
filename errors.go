// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSealed is returned by Insert once an engine has been sealed for lookups.
var ErrSealed = errors.New("lookup: engine is sealed, no more routes can be inserted")

// InvalidAddressError is returned when text does not parse as a
// dotted-decimal IPv4 address.
type InvalidAddressError struct {
	Address string
	Err     error
}

func (e *InvalidAddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lookup: invalid IPv4 address %q: %v", e.Address, e.Err)
	}
	return fmt.Sprintf("lookup: invalid IPv4 address %q", e.Address)
}

func (e *InvalidAddressError) Unwrap() error {
	return e.Err
}

// MalformedRouteError is returned when a route line is not of the form
// address/prefixLength with a prefix length in [0,32].
type MalformedRouteError struct {
	Line   string
	Reason string
}

func (e *MalformedRouteError) Error() string {
	return fmt.Sprintf("lookup: malformed route %q: %s", e.Line, e.Reason)
}
