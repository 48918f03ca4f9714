package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(transactionDate, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.True(t, transactionDate.Equal(cursor.TransactionDate), "Transaction date should match after decode")
	assert.Equal(t, int64(42), cursor.ID)

	// Round trip through the cursor helper as well
	again, err := DecodeToken(EncodeCursor(*cursor))
	require.NoError(t, err)
	assert.Equal(t, cursor.ID, again.ID)
}

func TestDecodeEmptyToken(t *testing.T) {
	cursor, err := DecodeToken("")
	assert.NoError(t, err)
	assert.Nil(t, cursor, "Empty token is the first page")
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|5"))
	_, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transaction date parse")

	badID := base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|abc"))
	_, err = DecodeToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}
