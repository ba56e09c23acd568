// Package encoding serializes element state maps into compact, tamper-proof
// blobs for transport across processes or requests.
//
// Two modes are supported:
//   - Signed (default): msgpack + base64 with an HMAC signature. The payload
//     is visible but cannot be altered.
//   - Encrypted: AES-256-GCM. The payload is fully opaque.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for blob decoding.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid blob format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// Encoder encodes and decodes state maps with one key.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// through SHA-256 so AES-256 always gets a full key.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode serializes the state map. When sensitive is true the blob is
// encrypted; otherwise it is signed.
func (e *Encoder) Encode(state map[string]any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(state)
	if err != nil {
		return "", err
	}
	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode verifies (or decrypts) a blob and returns the state map.
func (e *Encoder) Decode(blob string, sensitive bool) (map[string]any, error) {
	var packed []byte
	var err error
	if sensitive {
		packed, err = e.decrypt(blob)
	} else {
		packed, err = e.verify(blob)
	}
	if err != nil {
		return nil, err
	}

	var state map[string]any
	if err := msgpack.Unmarshal(packed, &state); err != nil {
		return nil, ErrInvalidFormat
	}
	return state, nil
}

// sign produces "payload.signature", both base64, signature truncated to
// 128 bits.
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
	return b64 + "." + sig
}

func (e *Encoder) verify(blob string) ([]byte, error) {
	parts := strings.SplitN(blob, ".", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidFormat
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:16]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	ciphertext := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (e *Encoder) decrypt(blob string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext[e.gcm.NonceSize():], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
