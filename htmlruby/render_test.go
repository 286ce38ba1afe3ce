package htmlruby

import (
	"testing"

	"github.com/tsawler/rubytext"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		segs []rubytext.Segment
		opts *Options
		want string
	}{
		{
			name: "empty",
			segs: nil,
			want: "",
		},
		{
			name: "plain only",
			segs: []rubytext.Segment{rubytext.Plain("ここは")},
			want: "ここは",
		},
		{
			name: "single rubied",
			segs: []rubytext.Segment{rubytext.Rubied("東京", "とうきょう")},
			want: "<ruby>東京<rp>(</rp><rt>とうきょう</rt><rp>)</rp></ruby>",
		},
		{
			name: "mixed",
			segs: []rubytext.Segment{
				rubytext.Plain("ここは"),
				rubytext.Rubied("東", "とう"),
				rubytext.Rubied("京", "きょう"),
				rubytext.Plain("です"),
			},
			want: "ここは<ruby>東<rp>(</rp><rt>とう</rt><rp>)</rp></ruby>" +
				"<ruby>京<rp>(</rp><rt>きょう</rt><rp>)</rp></ruby>です",
		},
		{
			name: "omit fallback",
			segs: []rubytext.Segment{rubytext.Rubied("東京", "とうきょう")},
			opts: &Options{OmitFallback: true},
			want: "<ruby>東京<rt>とうきょう</rt></ruby>",
		},
		{
			name: "custom fallback",
			segs: []rubytext.Segment{rubytext.Rubied("東京", "とうきょう")},
			opts: &Options{FallbackOpen: "【", FallbackClose: "】"},
			want: "<ruby>東京<rp>【</rp><rt>とうきょう</rt><rp>】</rp></ruby>",
		},
		{
			name: "escapes markup characters",
			segs: []rubytext.Segment{
				rubytext.Plain("a<b&"),
				rubytext.Rubied("<x>", "&y"),
			},
			want: "a&lt;b&amp;<ruby>&lt;x&gt;<rp>(</rp><rt>&amp;y</rt><rp>)</rp></ruby>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := rubytext.FromSegments(tt.segs)
			if got := Render(rs, tt.opts); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
