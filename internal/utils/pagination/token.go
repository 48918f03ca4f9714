package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/nemo/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded token from the last transaction on a page.
func EncodeToken(transactionDate time.Time, id int64) string {
	tokenStr := fmt.Sprintf("%s|%d", transactionDate.Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// EncodeCursor is EncodeToken for a cursor value.
func EncodeCursor(cursor domain.TransactionCursor) string {
	return EncodeToken(cursor.TransactionDate, cursor.ID)
}

// DecodeToken parses the token back into a transaction cursor. An empty token means the
// first page and decodes to a nil cursor.
func DecodeToken(token string) (*domain.TransactionCursor, error) {
	if token == "" {
		return nil, nil
	}
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (transaction date parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return &domain.TransactionCursor{TransactionDate: transactionDate, ID: id}, nil
}
