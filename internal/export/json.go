package export

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"trainlock/internal/models"
)

const pbkdf2Iterations = 120_000

// EncodeDocument renders the versioned document as indented JSON.
func EncodeDocument(doc models.Document) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

type encryptedDocument struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// EncryptDocument seals an encoded document with a passphrase-derived key.
func EncryptDocument(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	wrapped := encryptedDocument{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.MarshalIndent(wrapped, "", "  ")
}

// DecryptDocument unwraps an encrypted export. The second return is false
// when raw is not an encrypted document at all, letting callers fall through
// to plain decoding.
func DecryptDocument(raw []byte, passphrase string) ([]byte, bool, error) {
	var wrapped encryptedDocument
	if err := json.Unmarshal(raw, &wrapped); err != nil || !wrapped.Encrypted {
		return nil, false, nil
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, true, fmt.Errorf("decode salt: %w", err)
	}
	if len(salt) == 0 {
		return nil, true, fmt.Errorf("decrypt document: empty salt")
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, true, fmt.Errorf("decode nonce: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, true, fmt.Errorf("decode payload: %w", err)
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, true, err
	}
	// gcm.Open panics on a wrong-sized nonce; a corrupt file must fail, not crash.
	if len(nonce) != gcm.NonceSize() {
		return nil, true, fmt.Errorf("decrypt document: nonce has %d bytes, want %d", len(nonce), gcm.NonceSize())
	}
	plain, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, true, fmt.Errorf("decrypt document: %w", err)
	}
	return plain, true, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
