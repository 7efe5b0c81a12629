package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
)

// ErrUnsupportedKey is returned by VerifierFor for key types other than RSA.
var ErrUnsupportedKey = errors.New("unsupported public key type")

// SignerRSA returns a SignFunc producing RSASSA-PKCS1-v1_5 signatures over the SHA-256 digest of the
// signing string.
func SignerRSA(key *rsa.PrivateKey) SignFunc {
	return func(data []byte) ([]byte, error) {
		digest := sha256.Sum256(data)
		return rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	}
}

// VerifierFor binds a VerifyFunc to a public key, with SHA-256 as the fixed digest.
func VerifierFor(key crypto.PublicKey) (VerifyFunc, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return func(data, sig []byte) (bool, error) {
			digest := sha256.Sum256(data)
			return rsa.VerifyPKCS1v15(k, crypto.SHA256, digest[:], sig) == nil, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}
