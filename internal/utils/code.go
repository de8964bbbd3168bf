package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewActivationCode returns a 6-digit numeric code. crypto/rand because the
// code is the only proof of account ownership until activation.
func NewActivationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// rand.Reader failing means the platform is broken anyway
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
