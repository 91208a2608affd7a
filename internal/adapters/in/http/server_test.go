package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_formatOrDefault(t *testing.T) {
	s := &Server{defaultFormat: "100x150"}

	t.Run("should substitute the configured format when none is given", func(t *testing.T) {
		assert.Equal(t, "100x150", s.formatOrDefault(""))
	})

	t.Run("should keep an explicitly requested format", func(t *testing.T) {
		assert.Equal(t, "a4", s.formatOrDefault("a4"))
	})
}
