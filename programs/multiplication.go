package programs

import (
	_ "embed"
	"sync"
)

//go:embed multiplication.cue
var multiplicationSrc []byte

var multiplication = sync.OnceValues(func() (*Program, error) {
	def, err := ParseCUE("multiplication.cue", multiplicationSrc)
	if err != nil {
		return nil, err
	}
	return Compile(def)
})

// Multiplication returns the sample program multiplying the #-separated binary numbers on tape 1
func Multiplication() (*Program, error) {
	return multiplication()
}
