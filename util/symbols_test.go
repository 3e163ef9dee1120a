package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSymbols(t *testing.T) {
	tests := []struct {
		arg  string
		want []string
	}{
		{arg: NoSymbols, want: nil},
		{arg: "", want: nil},
		{arg: "!@#", want: []string{"!", "@", "#"}},
		{arg: "!!", want: []string{"!", "!"}},
		{arg: `!\$`, want: []string{"!", "$"}},
		{arg: `\\!`, want: []string{"!", `\`}},
		{arg: "€$", want: []string{"€", "$"}},
	}

	for _, tt := range tests {
		got := ParseSymbols(tt.arg)
		if len(tt.want) == 0 {
			assert.Empty(t, got, tt.arg)
			continue
		}
		assert.Equal(t, tt.want, got, tt.arg)
	}
}
