package breach

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// PrefixLength is the number of hex characters sent to the range endpoint.
const PrefixLength = 5

// Digest is the uppercase hex SHA-1 of a credential split into the part that
// is sent to the server and the part that never leaves the process.
type Digest struct {
	Prefix string
	Suffix string
}

// DigestOf hashes the UTF-8 bytes of credential.
func DigestOf(credential string) Digest {
	sum := sha1.Sum([]byte(credential))
	full := strings.ToUpper(hex.EncodeToString(sum[:]))
	return Digest{Prefix: full[:PrefixLength], Suffix: full[PrefixLength:]}
}

func (d Digest) String() string {
	return d.Prefix + d.Suffix
}
