package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cosmos/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// ed25519 key scheme flag, the only scheme the faucet signs with
	schemeEd25519 byte = 0x00

	privateKeyHRP = "suiprivkey"

	seedLength = ed25519.SeedSize
)

// Sui transaction data intent: scope TransactionData, version V0, app Sui.
var transactionIntent = []byte{0, 0, 0}

// Keypair holds the server's ed25519 signing credential.
type Keypair struct {
	priv ed25519.PrivateKey
}

// LoadKeypair decodes a signing credential in any of the three
// supported encodings:
//   - bech32 `suiprivkey1...` (flag byte + 32-byte seed)
//   - base64 with a leading scheme flag byte
//   - raw hex of 32 or 64 bytes, optional 0x prefix; 64-byte input
//     keeps the first 32 bytes as seed
func LoadKeypair(credential string) (*Keypair, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, fmt.Errorf("empty signing credential")
	}

	if strings.HasPrefix(credential, privateKeyHRP+"1") {
		return keypairFromBech32(credential)
	}

	if seed, err := seedFromHex(credential); err == nil {
		return keypairFromSeed(seed)
	}

	if seed, err := seedFromBase64(credential); err == nil {
		return keypairFromSeed(seed)
	}

	return nil, fmt.Errorf("unrecognized private key encoding, expected bech32 %s, flagged base64, or 32/64 byte hex", privateKeyHRP)
}

func keypairFromBech32(credential string) (*Keypair, error) {
	hrp, data, err := bech32.DecodeToBase256(credential)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bech32 private key: %w", err)
	}
	if hrp != privateKeyHRP {
		return nil, fmt.Errorf("unexpected bech32 prefix %q", hrp)
	}
	if len(data) != seedLength+1 {
		return nil, fmt.Errorf("bech32 private key must carry %d bytes, got %d", seedLength+1, len(data))
	}
	if data[0] != schemeEd25519 {
		return nil, fmt.Errorf("unsupported key scheme flag 0x%02x, only ed25519 is supported", data[0])
	}
	return keypairFromSeed(data[1:])
}

func seedFromHex(credential string) ([]byte, error) {
	s := strings.TrimPrefix(credential, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case seedLength:
		return raw, nil
	case 2 * seedLength:
		// Expanded 64-byte secret, first 32 bytes are the seed
		return raw[:seedLength], nil
	default:
		return nil, fmt.Errorf("hex private key must be 32 or 64 bytes, got %d", len(raw))
	}
}

func seedFromBase64(credential string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		return nil, err
	}
	if len(raw) != seedLength+1 {
		return nil, fmt.Errorf("base64 private key must carry %d bytes, got %d", seedLength+1, len(raw))
	}
	if raw[0] != schemeEd25519 {
		return nil, fmt.Errorf("unsupported key scheme flag 0x%02x, only ed25519 is supported", raw[0])
	}
	return raw[1:], nil
}

func keypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != seedLength {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", seedLength, len(seed))
	}
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// PublicKey returns the raw 32-byte ed25519 public key.
func (k *Keypair) PublicKey() []byte {
	return k.priv.Public().(ed25519.PublicKey)
}

// Address derives the Sui address: blake2b-256 over flag || pubkey.
func (k *Keypair) Address() string {
	digest := blake2b.Sum256(append([]byte{schemeEd25519}, k.PublicKey()...))
	return "0x" + hex.EncodeToString(digest[:])
}

// SignTransactionBlock signs BCS transaction bytes under the Sui
// transaction intent and returns the serialized signature
// (flag || signature || pubkey) in base64, the form
// sui_executeTransactionBlock expects.
func (k *Keypair) SignTransactionBlock(txBytes []byte) string {
	message := make([]byte, 0, len(transactionIntent)+len(txBytes))
	message = append(message, transactionIntent...)
	message = append(message, txBytes...)
	digest := blake2b.Sum256(message)

	signature := ed25519.Sign(k.priv, digest[:])

	serialized := make([]byte, 0, 1+len(signature)+ed25519.PublicKeySize)
	serialized = append(serialized, schemeEd25519)
	serialized = append(serialized, signature...)
	serialized = append(serialized, k.PublicKey()...)
	return base64.StdEncoding.EncodeToString(serialized)
}
