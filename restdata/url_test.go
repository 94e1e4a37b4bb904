// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct{ plain, encoded string }{
		{"foo", "foo"},
		{"topp:roads", "topp:roads"},
		{"", "-"},
		{"-", "-LQ"},
		{"\u0000", "-AA"},
		{"a b", "-YSBi"},
		{".", "-Lg"},
		{"..", "-Li4"},
		{"...", "-Li4u"},
		{".hidden", ".hidden"},
		{"a..b", "a..b"},
	}
	for _, test := range tests {
		assert.Equal(t, test.encoded, MaybeEncodeName(test.plain),
			"MaybeEncodeName(%q)", test.plain)

		dec, err := MaybeDecodeName(test.encoded)
		if assert.NoError(t, err, "MaybeDecodeName(%q)", test.encoded) {
			assert.Equal(t, test.plain, dec,
				"MaybeDecodeName(%q)", test.encoded)
		}
	}
}

func TestDecodeBadName(t *testing.T) {
	_, err := MaybeDecodeName("-!!")
	assert.Error(t, err)
}
