// Package gomap converts between Go values and Koda values.
//
// # Usage
//
//	type User struct {
//	    Name  string `koda:"name"`
//	    Admin bool   `koda:"admin,omitempty"`
//	}
//
//	// Go value to Koda text and back.
//	d, err := gomap.Marshal(User{Name: "ada"})
//	var user User
//	err = gomap.Unmarshal(d, &user)
//
//	// Via the tree form.
//	node, err := gomap.ToIR(user)
//	err = gomap.FromIR(node, &user)
//
// MarshalWire and UnmarshalWire are the binary counterparts of
// Marshal and Unmarshal.
//
// Numbers cross the boundary the way a host runtime with a single
// number type hands them over: every Go integer kind becomes Int, and
// a float becomes Int when it is integral with magnitude at most 2^53,
// Float otherwise. Struct fields keep their declaration order; map
// keys are sorted.
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/ir - tree form
//   - github.com/koda-format/go-koda/encode - text encoding
//   - github.com/koda-format/go-koda/parse - text parsing
//   - github.com/koda-format/go-koda/wire - binary encoding
package gomap
