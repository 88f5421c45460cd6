package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffsetToken creates a base64 encoded continuation token carrying the
// offset of the next page and the ordering it was issued for.
func EncodeOffsetToken(offset int, ordering string) string {
	tokenStr := fmt.Sprintf("%d|%s", offset, ordering)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken. A token issued
// for a different ordering is rejected, since its offset would skip or repeat rows.
func DecodeOffsetToken(token string, ordering string) (int, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	if parts[1] != ordering {
		return 0, fmt.Errorf("pagination token was issued for a different sort order")
	}
	return offset, nil
}

// NextOffsetToken returns the token for the page after [offset, offset+limit)
// or nil when that page already reached total.
func NextOffsetToken(offset, limit int, total int64, ordering string) *string {
	next := offset + limit
	if limit <= 0 || int64(next) >= total {
		return nil
	}
	token := EncodeOffsetToken(next, ordering)
	return &token
}
