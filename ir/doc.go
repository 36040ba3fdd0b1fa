// Package ir provides the in-memory representation for Koda documents.
//
// # Overview
//
// The ir package defines the core data structure for representing Koda
// documents as a tree of values. All Koda documents (whether parsed from
// text, decoded from the binary form, or created programmatically) are
// represented as ir.Value trees.
//
// The representation is a simple recursive structure carrying no position
// information from input documents, making it purely semantic. The same
// tree is the input and output of every engine operation: the text parser
// and printer, the binary encoder and decoder, and the host binding all
// speak ir.Value.
//
// # Value Structure
//
// A Value represents a single value in a Koda document. Values can be:
//
//   - Atomic types: null, boolean, integer, float, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The Value works as a recursive tagged union, where content is placed in
// fields depending on the value type.
//
// # Value Types
//
// The Type field indicates the value's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit IEEE-754 float
//   - StringType: UTF-8 string
//   - ArrayType: ordered list of values
//   - ObjectType: key-value pairs (fields and values)
//
// IntType and FloatType are distinct types, not presentations of one
// number type. 1 and 1.0 denote different values, survive round trips
// differently, and compare unequal under Equal.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Value{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Value{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Objects
//
// For ObjectType values, Fields[i] is the key for the value at Values[i],
// so there are always exactly as many fields as values. Keys are plain Go
// strings. Key order is significant and preserved end to end, and
// duplicate keys are allowed: an object is a list of pairs, not a map.
// FromMap is a convenience for building objects from Go maps and sorts
// keys for determinism; ToMap flattens duplicates with the last pair
// winning.
//
// # Comparison and Hashing
//
// Values have a total order:
//
//	equal := ir.Compare(a, b) == 0
//
// and a structural equality that keeps the Int/Float distinction:
//
//	same := ir.Equal(a, b)
//
// Values can be hashed for caching and deduplication:
//
//	h := v.Hash()
//
// # Thread Safety
//
// Value trees are not synchronized. Treat them as immutable once built;
// if a tree must be mutated while shared, clone it per goroutine.
package ir
