package model

import "strconv"

// Dimension is a top-level classification axis such as cost center (#DIM).
type Dimension struct {
	Number int
	Name   string
}

// SubDimension nests one level under a top-level dimension (#UNDERDIM).
type SubDimension struct {
	Number int
	Super  int
	Name   string
}

// Object is one value within a dimension, e.g. a project code (#OBJEKT).
type Object struct {
	Dimension int
	Number    string
	Name      string
}

// Ref returns the reference pointing at o.
func (o Object) Ref() ObjectRef {
	return ObjectRef{Dimension: o.Dimension, Object: o.Number}
}

// ObjectRef points at a dimension object from a balance or transaction.
type ObjectRef struct {
	Dimension int
	Object    string
}

// IsZero reports whether r points at nothing.
func (r ObjectRef) IsZero() bool {
	return r.Dimension == 0 && r.Object == ""
}

func (r ObjectRef) String() string {
	return strconv.Itoa(r.Dimension) + " " + r.Object
}

// ObjectReferrer is anything carrying dimension object references.
type ObjectReferrer interface {
	ObjectRefs() []ObjectRef
}
