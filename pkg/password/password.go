package password

import "crypto/rand"

// Alphabet for temporary passwords: upper + lower + digits (62 chars).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TempLength is the fixed length of generated temporary passwords.
const TempLength = 8

// NewTemp samples each position independently and uniformly from Alphabet.
// Rejection sampling keeps the distribution uniform (256 % 62 != 0).
func NewTemp() string {
	out := make([]byte, TempLength)
	buf := make([]byte, 1)
	// largest multiple of len(Alphabet) below 256
	max := byte(256 - 256%len(Alphabet))
	for i := 0; i < TempLength; {
		_, _ = rand.Read(buf)
		if buf[0] >= max {
			continue
		}
		out[i] = Alphabet[int(buf[0])%len(Alphabet)]
		i++
	}
	return string(out)
}
