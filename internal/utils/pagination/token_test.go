package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	sentAt := time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC)

	token := EncodeToken(sentAt, "m-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.True(t, sentAt.Equal(decodedAt), "Timestamp should match after decode")
	assert.Equal(t, "m-42", decodedID)

	// Ids may themselves contain the separator.
	token = EncodeToken(time.Time{}, "a|b")
	_, decodedID, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a|b", decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("yesterday|m-1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "time parse")
}
