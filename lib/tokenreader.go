package lib

// TokenReader is what the validator pulls tokens from. Scanner is the usual
// implementation; anything that can hand out positioned tokens works.
type TokenReader interface {
	HasMore() bool
	NextToken() (tok Token, offset int, err error)
	Offset() int
}
