package hash

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sum, Sum([]byte(tt.data)))
		})
	}
}

func TestSumReader_MatchesSum(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5}, 10000)

	got, err := SumReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, Sum(data), got)
}
