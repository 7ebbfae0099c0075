package naming

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrefix(t *testing.T) {
	abbrevs := map[string]string{"/home/u/very-long-project": "vlp"}

	tests := []struct {
		name string
		root string
		spec PrefixSpec
		want string
	}{
		{
			name: "literal passes through",
			root: "/home/u/proj/",
			spec: LiteralPrefix("./"),
			want: "./",
		},
		{
			name: "bracket uses basename",
			root: "/home/u/proj/",
			spec: BracketPrefix("[", "] "),
			want: "[proj] ",
		},
		{
			name: "bracket strips trailing separator before lookup",
			root: "/home/u/very-long-project/",
			spec: BracketPrefix("<", ">"),
			want: "<vlp>",
		},
		{
			name: "bracket lookup without trailing separator",
			root: "/home/u/very-long-project",
			spec: BracketPrefix("<", ">"),
			want: "<vlp>",
		},
		{
			name: "malformed spec falls back to placeholder",
			root: "/home/u/proj/",
			spec: PrefixSpec{Kind: PrefixKind(42)},
			want: "?/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrefix(tt.root, tt.spec, abbrevs, zerolog.Nop())
			assert.Equal(t, tt.want, got)
		})
	}
}
