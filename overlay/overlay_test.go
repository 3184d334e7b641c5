package overlay

import (
	"strings"
	"testing"
)

func TestCanvas(t *testing.T) {
	got := Canvas(4, 3)
	want := "    \n    \n    "
	if got != want {
		t.Errorf("Canvas(4, 3) = %q, want %q", got, want)
	}

	if got := Canvas(0, 3); got != "" {
		t.Errorf("Canvas(0, 3) = %q, want empty", got)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name    string
		content string
		row     int
		col     int
		want    string
	}{
		{
			name:    "inside",
			content: "ab\ncd",
			row:     1,
			col:     2,
			want:    "......\n..ab..\n..cd..\n......",
		},
		{
			name:    "clipped above",
			content: "ab\ncd",
			row:     -1,
			col:     0,
			want:    "cd....\n......\n......\n......",
		},
		{
			name:    "clipped below",
			content: "ab\ncd",
			row:     3,
			col:     0,
			want:    "......\n......\n......\nab....",
		},
		{
			name:    "entirely off the bottom",
			content: "ab",
			row:     9,
			col:     0,
			want:    "......\n......\n......\n......",
		},
		{
			name:    "clipped left",
			content: "abcd",
			row:     0,
			col:     -2,
			want:    "cd....\n......\n......\n......",
		},
		{
			name:    "clipped right",
			content: "abcd",
			row:     0,
			col:     4,
			want:    "....ab\n......\n......\n......",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := strings.ReplaceAll(Canvas(6, 4), " ", ".")
			got := Place(canvas, tt.content, tt.row, tt.col)
			if got != tt.want {
				t.Errorf("Place(%q, %d, %d) =\n%q\nwant\n%q", tt.content, tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"

	tests := []struct {
		name  string
		layer string
		want  string
	}{
		{
			name:  "replaces visible span",
			layer: "\n  xx\n",
			want:  "aaaaaa\nbbxxbb\ncccccc",
		},
		{
			name:  "blank lines leave base untouched",
			layer: "      \n      \n      ",
			want:  base,
		},
		{
			name:  "interior spaces belong to the span",
			layer: " x x\n\n",
			want:  "ax xaa\nbbbbbb\ncccccc",
		},
		{
			name:  "layer longer than base stops at base height",
			layer: "\n\nzz\nzz",
			want:  "aaaaaa\nbbbbbb\nzzcccc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(base, tt.layer, 6)
			if got != tt.want {
				t.Errorf("Compose =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestComposePadsShortBaseLines(t *testing.T) {
	base := "aa\nbb"
	layer := "    xx\n"

	got := Compose(base, layer, 6)
	want := "aa  xx\nbb"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}
