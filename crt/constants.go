package crt

import (
	"fmt"
	"strings"
)

// Strategy - Collision Resolution Technique used by a table, it is chosen once at construction
type Strategy int

const (
	// LinearProbing - Probes (h1 + i) mod M
	LinearProbing Strategy = iota + 1
	// QuadraticProbing - Probes (h1 + i*i) mod M
	QuadraticProbing
	// DoubleHashing - Probes (h1 + i*h2) mod M
	DoubleHashing
	// OrderedDoubleHashing - Probes as DoubleHashing but keeps an insertion order index for enumeration
	OrderedDoubleHashing
)

var strategyNames = map[Strategy]string{
	LinearProbing:        "linear",
	QuadraticProbing:     "quadratic",
	DoubleHashing:        "double",
	OrderedDoubleHashing: "ordered-double",
}

// String - Returns the lower case name of the strategy
func (S Strategy) String() string {
	if name, ok := strategyNames[S]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(S))
}

// IsValid - Returns true if S is one of the known strategies
func (S Strategy) IsValid() bool {
	_, ok := strategyNames[S]
	return ok
}

// IsDoubleHashing - Returns true for strategies relying on a secondary hash function
func (S Strategy) IsDoubleHashing() bool {
	return S == DoubleHashing || S == OrderedDoubleHashing
}

// ParseStrategy - Returns the Strategy given its name, case is ignored
func ParseStrategy(name string) (strategy Strategy, err error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range strategyNames {
		if sn == n {
			strategy = s
			return
		}
	}

	err = fmt.Errorf("unknown collision resolution technique %q", name)
	return
}
