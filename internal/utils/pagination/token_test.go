package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

const ordering = "t.operation_date_time DESC, t.transaction_id DESC"

func TestEncodeDecodeOffsetToken(t *testing.T) {
	token := EncodeOffsetToken(40, ordering)
	assert.NotEmpty(t, token, "Token should not be empty")

	offset, err := DecodeOffsetToken(token, ordering)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, 40, offset)
}

func TestDecodeOffsetToken_Errors(t *testing.T) {
	_, err := DecodeOffsetToken("%%%not-base64", ordering)
	assert.Error(t, err)

	_, err = DecodeOffsetToken(EncodeOffsetToken(20, "t.amount ASC, t.transaction_id ASC"), ordering)
	assert.ErrorContains(t, err, "different sort order")

	_, err = DecodeOffsetToken(base64.URLEncoding.EncodeToString([]byte("abc|"+ordering)), ordering)
	assert.ErrorContains(t, err, "offset")
}

func TestNextOffsetToken(t *testing.T) {
	assert.Nil(t, NextOffsetToken(0, 20, 20, ordering), "last page has no next token")
	assert.Nil(t, NextOffsetToken(0, 0, 100, ordering), "unbounded page has no next token")

	next := NextOffsetToken(20, 20, 41, ordering)
	if assert.NotNil(t, next) {
		offset, err := DecodeOffsetToken(*next, ordering)
		assert.NoError(t, err)
		assert.Equal(t, 40, offset)
	}
}
