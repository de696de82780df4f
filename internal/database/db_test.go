package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRejectsBadURI(t *testing.T) {
	client, err := Open(context.Background(), "not-a-mongo-uri")
	assert.Error(t, err)
	assert.Nil(t, client)
}
