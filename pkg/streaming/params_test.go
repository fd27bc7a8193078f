package streaming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttakahari/CoreTweet/pkg/streaming"
)

func TestParams_EncodePreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	p := streaming.NewParams().
		Set("track", "golang").
		Set("stall_warnings", true).
		Set("count", 0)

	assert.Equal(t, "track=golang&stall_warnings=true&count=0", p.Encode())
	assert.Equal(t, 3, p.Len())
}

func TestParams_EncodeValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello world", "v=hello+world"},
		{"bool", false, "v=false"},
		{"int64", int64(12345), "v=12345"},
		{"float", 51.5074, "v=51.5074"},
		{"string slice", []string{"golang", "gopher"}, "v=golang%2Cgopher"},
		{"int64 slice", []int64{1, 2, 3}, "v=1%2C2%2C3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, streaming.NewParams().Set("v", tt.value).Encode())
		})
	}
}

func TestParams_NilEncodesEmpty(t *testing.T) {
	t.Parallel()

	var p *streaming.Params
	assert.Equal(t, "", p.Encode())
	assert.Equal(t, 0, p.Len())
}
