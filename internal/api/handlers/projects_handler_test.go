package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateRequest(t *testing.T) {
	req, err := decodeCreateRequest(strings.NewReader(`{"title":"A","description":"B","image_url":"C"}` + "\n"))
	require.NoError(t, err)
	assert.Equal(t, "A", req.Title)
	assert.Equal(t, "B", req.Description)
	assert.Equal(t, "C", req.ImageURL)

	rejected := []string{
		`{"title":"A","description":"B","image_url":"C"} garbage`,
		`{"title":"A","description":"B","image_url":"C"}{}`,
		`{"title":"A","description":"B","image_url":"C"} 1`,
		`{"title":"A"`,
		``,
	}
	for _, body := range rejected {
		_, err := decodeCreateRequest(strings.NewReader(body))
		assert.Error(t, err, body)
	}
}
