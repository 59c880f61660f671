package elements

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/store"
)

func plain(message string, _ record.Level, _ record.Info) string { return message }

func newStore(keyed bool, msgs ...string) *store.Store {
	opts := store.Options{Formatter: plain, Palette: record.DefaultPalette}
	if keyed {
		opts.KeyFunc = store.ByProducer
	}
	st := store.New(opts)
	for _, m := range msgs {
		st.Insert(&record.Record{Message: m, Level: record.LevelInfo})
	}
	return st
}

func render(cols, rows int, area geometry.Box[int], st *store.Store, d func(*bytes.Buffer, geometry.Box[int], *store.Store)) *screen {
	var buf bytes.Buffer
	d(&buf, area, st)
	return newScreen(cols, rows).replay(buf.String())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"abcdef", 4, []string{"abcd", "ef"}},
		{"abcd", 4, []string{"abcd"}},
		{"a\nbc", 1, []string{"a", "b", "c"}},
		{"日本語", 4, []string{"日本", "語"}},
		{"", 5, nil},
		{"a\n\nb", 5, []string{"a", "b"}},
		{"abc", 0, nil},
	}
	for _, tt := range tests {
		if got := Wrap(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestFeedNewestAtBottom(t *testing.T) {
	st := newStore(false, "one", "two")
	scr := render(6, 3, geometry.Terminal(6, 3), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Feed{}.Draw(b, a, s) })

	want := []string{"      ", "one   ", "two   "}
	for i, w := range want {
		if got := scr.row(i); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestFeedWrapsAndStopsAtTop(t *testing.T) {
	st := newStore(false, "old", "abcdefg", "new")
	area := geometry.Box[int]{X: 1, Y: 1, Length: 4, Height: 3}
	scr := render(6, 5, area, st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Feed{}.Draw(b, a, s) })

	want := []string{"......", ".abcd.", ".efg .", ".new .", "......"}
	for i, w := range want {
		if got := scr.row(i); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestFeedUsesLevelColor(t *testing.T) {
	st := newStore(false)
	st.Insert(&record.Record{Message: "boom", Level: record.LevelError})
	var buf bytes.Buffer
	Feed{}.Draw(&buf, geometry.Terminal(8, 1), st)
	if !strings.Contains(buf.String(), record.Red.SGR()+"boom") {
		t.Fatalf("frame %q lacks red error line", buf.String())
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		count, peak uint64
		height      int
		want        int
	}{
		{0, 10, 5, 0},
		{3, 4, 5, 3},
		{5, 5, 5, 5},
		{10, 10, 5, 5},
		{5, 10, 5, 2},
		{1, 1000, 5, 1},
		{3, 3, 0, 0},
	}
	for _, tt := range tests {
		if got := BarHeight(tt.count, tt.peak, tt.height); got != tt.want {
			t.Errorf("BarHeight(%d, %d, %d) = %d, want %d", tt.count, tt.peak, tt.height, got, tt.want)
		}
	}
}

func TestHistogramBars(t *testing.T) {
	st := newStore(false)
	st.Insert(&record.Record{Level: record.LevelError})
	for i := 0; i < 3; i++ {
		st.Insert(&record.Record{Level: record.LevelInfo})
	}
	scr := render(7, 4, geometry.Terminal(7, 4), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Histogram{}.Draw(b, a, s) })

	want := []string{
		"       ",
		"    #  ",
		"    #  ",
		"  # #  ",
	}
	for i, w := range want {
		if got := scr.bars(i); got != w {
			t.Fatalf("bars row %d = %q, want %q", i, got, w)
		}
	}
}

func TestHistogramScalesPastHeight(t *testing.T) {
	st := newStore(false)
	for i := 0; i < 20; i++ {
		st.Insert(&record.Record{Level: record.LevelWarn})
	}
	for i := 0; i < 10; i++ {
		st.Insert(&record.Record{Level: record.LevelTrace})
	}
	scr := render(7, 4, geometry.Terminal(7, 4), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Histogram{}.Draw(b, a, s) })
	if got := scr.bars(0); got != "   #   " {
		t.Fatalf("top row = %q, want only warn filled", got)
	}
	if got := scr.bars(3); got != "   #  #" {
		t.Fatalf("bottom row = %q", got)
	}
}

func TestHistogramTooNarrowIsBlank(t *testing.T) {
	st := newStore(false, "x")
	scr := render(6, 2, geometry.Terminal(6, 2), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Histogram{}.Draw(b, a, s) })
	for i := 0; i < 2; i++ {
		if scr.row(i) != "      " || strings.Contains(scr.bars(i), "#") {
			t.Fatalf("row %d = %q / %q, want blank", i, scr.row(i), scr.bars(i))
		}
	}
}

func producer(id uint64, name string) record.Info {
	return record.Info{Thread: &record.Fingerprint{ID: id, Name: name}}
}

func TestKeyedHistogram(t *testing.T) {
	st := newStore(true)
	st.Insert(&record.Record{Level: record.LevelError, Info: producer(1, "X")})
	st.Insert(&record.Record{Level: record.LevelInfo, Info: producer(2, "Y")})
	st.Insert(&record.Record{Level: record.LevelInfo, Info: producer(2, "Y")})

	scr := render(15, 3, geometry.Terminal(15, 3), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { KeyedHistogram{}.Draw(b, a, s) })
	if got := scr.bars(0); got != "           #   " {
		t.Fatalf("row 0 = %q", got)
	}
	if got := scr.bars(1); got != "  #        #   " {
		t.Fatalf("row 1 = %q", got)
	}
	if got := scr.row(2); got != "  X      Y     " {
		t.Fatalf("label row = %q", got)
	}
}

func TestKeyedHistogramWithoutKeysIsBlank(t *testing.T) {
	st := newStore(false, "x")
	scr := render(7, 2, geometry.Terminal(7, 2), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { KeyedHistogram{}.Draw(b, a, s) })
	if scr.row(0) != "       " || strings.Contains(scr.bars(1), "#") {
		t.Fatalf("keyed histogram drew %q without keyed counting", scr.row(0))
	}
}

func TestSummary(t *testing.T) {
	st := newStore(true)
	st.Insert(&record.Record{Level: record.LevelError, Info: producer(1, "X")})
	st.Insert(&record.Record{Level: record.LevelInfo, Info: producer(2, "Y")})

	scr := render(40, 6, geometry.Terminal(40, 6), st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Summary{}.Draw(b, a, s) })
	want := []string{
		`      total: 2, "X": 1, "Y": 1,`,
		`ERROR total: 1, "X": 1, "Y": 0,`,
		`WARN  total: 0, "X": 0, "Y": 0,`,
		`INFO  total: 1, "X": 0, "Y": 1,`,
		`DEBUG total: 0, "X": 0, "Y": 0,`,
		`TRACE total: 0, "X": 0, "Y": 0,`,
	}
	for i, w := range want {
		if got := strings.TrimRight(scr.row(i), " "); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestSummaryClipsToArea(t *testing.T) {
	st := newStore(false, "a", "b")
	scr := render(10, 3, geometry.Box[int]{Length: 8, Height: 2}, st, func(b *bytes.Buffer, a geometry.Box[int], s *store.Store) { Summary{}.Draw(b, a, s) })
	if got := scr.row(0); got != "      to.." {
		t.Fatalf("row 0 = %q", got)
	}
	if got := scr.row(1); got != "ERROR to.." {
		t.Fatalf("row 1 = %q", got)
	}
	if got := scr.row(2); got != ".........." {
		t.Fatalf("row 2 = %q, want untouched", got)
	}

	var buf bytes.Buffer
	Summary{}.Draw(&buf, geometry.Box[int]{Length: 8}, st)
	if buf.Len() != 0 {
		t.Fatalf("zero height summary wrote %q", buf.String())
	}
}

func TestSeparators(t *testing.T) {
	var buf bytes.Buffer
	HorizontalBar{}.Draw(&buf, geometry.Box[int]{X: 1, Y: 1, Length: 3, Height: 1}, nil)
	VerticalBar{}.Draw(&buf, geometry.Box[int]{X: 4, Y: 0, Length: 1, Height: 3}, nil)
	scr := newScreen(5, 3).replay(buf.String())

	want := []string{"....|", ".===|", "....|"}
	for i, w := range want {
		if got := scr.row(i); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestDefaultLayout(t *testing.T) {
	for _, l := range []Layout{{}, {Summary: true}, {Summary: true, SeparateHistograms: true}} {
		t.Run(fmt.Sprintf("%+v", l), func(t *testing.T) {
			st := newStore(l.SeparateHistograms, "hello")
			var buf bytes.Buffer
			if err := Default(l).Descend(&buf, geometry.Terminal(40, 12), st); err != nil {
				t.Fatalf("Descend: %v", err)
			}
			scr := newScreen(40, 12).replay(buf.String())
			feedRows := 12
			if l.Summary {
				feedRows = 5
				if got := scr.row(5); got != strings.Repeat("=", 40) {
					t.Fatalf("separator row = %q", got)
				}
			}
			if got := scr.row(feedRows - 1)[:6]; got != "hello " {
				t.Fatalf("feed bottom row = %q", scr.row(feedRows-1))
			}
			if got := scr.row(0)[32]; got != '|' {
				t.Fatalf("column 32 = %q, want vertical bar", got)
			}
		})
	}
}

func TestDefaultLayoutTooSmall(t *testing.T) {
	st := newStore(false)
	var buf bytes.Buffer
	if err := Default(Layout{Summary: true}).Descend(&buf, geometry.Terminal(80, 3), st); err != nil {
		t.Fatalf("Descend on a short terminal: %v", err)
	}
}
