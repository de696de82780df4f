package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	port := root.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "", port.DefValue)

	consume, _, err := root.Find([]string{"consume"})
	require.NoError(t, err)
	assert.Equal(t, "consume", consume.Name())
	assert.Equal(t, "logs", consume.Flags().Lookup("log-dir").DefValue)
}
