package utils

import "crypto/rand"

const accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AccessCodeLength is the fixed length of student access codes.
const AccessCodeLength = 6

// codeByteLimit is the largest multiple of the alphabet size that fits in a
// byte. Draws at or above it are rejected; a plain modulo over the full byte
// range would over-represent the first 256%36 characters.
const codeByteLimit = 252

// GenerateAccessCode draws a random uppercase alphanumeric code. Uniqueness
// is not guaranteed here; callers must retry on a unique-constraint hit.
func GenerateAccessCode() (string, error) {
	code := make([]byte, 0, AccessCodeLength)
	buf := make([]byte, AccessCodeLength)
	for len(code) < AccessCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		code = appendCodeChars(code, buf)
	}
	return string(code[:AccessCodeLength]), nil
}

func appendCodeChars(code, draw []byte) []byte {
	for _, b := range draw {
		if b >= codeByteLimit {
			continue
		}
		code = append(code, accessCodeAlphabet[int(b)%len(accessCodeAlphabet)])
	}
	return code
}
