package moves

import "fmt"

// JoinCriteria pairs the move types on either side of a prospective
// bimolecular join. The join decision itself belongs to the caller.
type JoinCriteria struct {
	Types [2]MoveType
}

// NewJoinCriteria creates a JoinCriteria
func NewJoinCriteria(first, second MoveType) JoinCriteria {
	return JoinCriteria{Types: [2]MoveType{first, second}}
}

// TypeMult is the prime encoding of the two move types
func (j JoinCriteria) TypeMult() int {
	return TypeMult(j.Types[0], j.Types[1])
}

func (j JoinCriteria) String() string {
	return fmt.Sprintf("Types = %s %s", j.Types[0], j.Types[1])
}
