package ir

import "fmt"

// Datatype enumerates the port datatypes of the IR.
//
// The list kinds exist only for inputs that accept zero or more incoming
// connections of their element kind: ImpulseList covers every impulse input,
// while IntList and StringList cover expandable accumulator inputs (Plus and
// friends). Outputs are always scalar.
type Datatype int

const (
	DatatypeInvalid Datatype = iota
	DatatypeImpulse
	DatatypeImpulseList
	DatatypeFloat
	DatatypeInt
	DatatypeIntList
	DatatypeString
	DatatypeStringList
	DatatypeBool
	DatatypeSlot
)

var datatypeNames = map[Datatype]string{
	DatatypeInvalid:     "Invalid",
	DatatypeImpulse:     "Impulse",
	DatatypeImpulseList: "ImpulseList",
	DatatypeFloat:       "Float",
	DatatypeInt:         "Int",
	DatatypeIntList:     "IntList",
	DatatypeString:      "String",
	DatatypeStringList:  "StringList",
	DatatypeBool:        "Bool",
	DatatypeSlot:        "Slot",
}

func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Datatype(%d)", int(d))
}

// IsList reports whether d is a list datatype.
func (d Datatype) IsList() bool {
	switch d {
	case DatatypeImpulseList, DatatypeIntList, DatatypeStringList:
		return true
	default:
		return false
	}
}

// Element returns the element datatype of a list datatype.
func (d Datatype) Element() (Datatype, error) {
	switch d {
	case DatatypeImpulseList:
		return DatatypeImpulse, nil
	case DatatypeIntList:
		return DatatypeInt, nil
	case DatatypeStringList:
		return DatatypeString, nil
	default:
		return DatatypeInvalid, wiref(ErrNotAList, "type %s is not a list", d)
	}
}

// ParseDatatype maps a datatype name (as it appears in catalog documents)
// back to its Datatype. The Invalid kind is not parseable.
func ParseDatatype(name string) (Datatype, error) {
	for d, n := range datatypeNames {
		if d != DatatypeInvalid && n == name {
			return d, nil
		}
	}
	return DatatypeInvalid, fmt.Errorf("unknown datatype %q", name)
}
