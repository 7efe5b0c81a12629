package conversions

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/sidereusnuntius/commune/internal/federation"
)

// ParsePublicKeyPem decodes a PEM encoded public key.
func ParsePublicKeyPem(s string) (crypto.PublicKey, error) {
	block, _ := pem.Decode([]byte(s))
	if block == nil {
		return nil, fmt.Errorf("%w: public key is not pem encoded", federation.ErrInvalidForm)
	}
	return ExtractPublicKeyFromPem(*block)
}

func ExtractPublicKeyFromPem(block pem.Block) (crypto.PublicKey, error) {
	var pubKey crypto.PublicKey
	var err error
	switch block.Type {
	case "PUBLIC KEY":
		pubKey, err = x509.ParsePKIXPublicKey(block.Bytes)
	case "RSA PUBLIC KEY":
		pubKey, err = x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		err = fmt.Errorf("unsupported type: %s", block.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", federation.ErrInvalidForm, err)
	}
	return pubKey, nil
}
