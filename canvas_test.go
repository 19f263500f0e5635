package boxlayout

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'─', 1},
		{'é', 1},
		{'日', 2},
		{'한', 2},
		{'Ａ', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("ab日本"); got != 6 {
		t.Errorf("StringWidth = %d, want 6", got)
	}
	if got := StringWidth(""); got != 0 {
		t.Errorf("StringWidth(\"\") = %d, want 0", got)
	}
}

func TestNewCanvas_NegativeSize(t *testing.T) {
	c := NewCanvas(-1, 3)
	if c.Width() != 0 || c.Height() != 3 {
		t.Errorf("size = %d x %d, want 0 x 3", c.Width(), c.Height())
	}
}

func TestCanvas_SetRuneWide(t *testing.T) {
	c := NewCanvas(4, 1)
	c.SetRune(0, 0, '日')

	if c.Cell(0, 0).Width != 2 {
		t.Errorf("primary cell width = %d, want 2", c.Cell(0, 0).Width)
	}
	if !c.Cell(1, 0).IsContinuation() {
		t.Error("second cell should be a continuation")
	}
	if got := c.String(); got != "日" {
		t.Errorf("String() = %q, want %q", got, "日")
	}
}

func TestCanvas_OverwriteContinuation(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetRune(0, 0, '日')
	c.SetRune(1, 0, 'x')

	if got := c.String(); got != " x" {
		t.Errorf("String() = %q, want %q", got, " x")
	}
}

func TestCanvas_WideRuneAtEdge(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetRune(1, 0, '日')

	if got := c.Cell(1, 0); got.Rune != ' ' || got.Width != 1 {
		t.Errorf("cell = %+v, want a space", got)
	}
}

func TestCanvas_SetStringClipped(t *testing.T) {
	c := NewCanvas(10, 2)

	n := c.SetString(-2, 0, "abcdef", NewRect(0, 0, 3, 1))
	if n != 3 {
		t.Errorf("SetString wrote %d cells, want 3", n)
	}
	if n := c.SetString(0, 1, "zzz", NewRect(0, 0, 3, 1)); n != 0 {
		t.Errorf("row outside clip wrote %d cells, want 0", n)
	}
	if got := c.String(); got != "cde\n" {
		t.Errorf("String() = %q, want %q", got, "cde\n")
	}
}

func TestCanvas_Fill(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Fill(NewRect(1, 1, 10, 1), '#')

	want := "\n ###\n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawBox(t *testing.T) {
	tests := []struct {
		name   string
		border BorderStyle
		rect   Rect
		want   string
	}{
		{
			name:   "single",
			border: BorderSingle,
			rect:   NewRect(0, 0, 4, 3),
			want:   "┌──┐\n│  │\n└──┘",
		},
		{
			name:   "double",
			border: BorderDouble,
			rect:   NewRect(0, 0, 3, 2),
			want:   "╔═╗\n╚═╝\n",
		},
		{
			name:   "none draws nothing",
			border: BorderNone,
			rect:   NewRect(0, 0, 4, 3),
			want:   "\n\n",
		},
		{
			name:   "too small",
			border: BorderSingle,
			rect:   NewRect(0, 0, 1, 3),
			want:   "\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 3)
			DrawBox(c, tt.rect, tt.border)
			if got := c.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	for _, b := range []BorderStyle{BorderNone, BorderSingle, BorderDouble, BorderRounded, BorderThick} {
		got, err := ParseBorderStyle(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBorderStyle(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, err := ParseBorderStyle(""); err != nil || got != BorderNone {
		t.Errorf("ParseBorderStyle(\"\") = %v, %v", got, err)
	}
	if _, err := ParseBorderStyle("dotted"); err == nil {
		t.Error("expected an error for an unknown style")
	}
}
