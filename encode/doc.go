// Package encode renders IR values as Koda text.
//
// # Usage
//
//	v := ir.FromKeyVals(
//	    ir.KeyVal{Key: "name", Val: ir.FromString("alice")},
//	    ir.KeyVal{Key: "age", Val: ir.FromInt(30)},
//	)
//	s, err := encode.String(v)
//	// {"name":"alice","age":30}
//
//	// Multi-line output
//	s, err = encode.String(v, encode.Indent(2))
//
// The default output is compact and canonical: a given value always
// renders to the same bytes, so encoded text can be compared or hashed
// directly. Object fields keep their stored order, duplicates included.
// Floats that would read back as integers get a ".0" suffix, keeping
// the Int/Float distinction across a round trip.
//
// # Related Packages
//
//   - github.com/koda-format/go-koda/ir - IR representation
//   - github.com/koda-format/go-koda/parse - Parse text to IR
package encode
