package youtube

import "testing"

func TestThumbnails_BestURL(t *testing.T) {
	tests := []struct {
		name   string
		thumbs Thumbnails
		want   string
	}{
		{
			"prefers maxres",
			Thumbnails{Default: "d", Standard: "s", High: "h", Maxres: "m"},
			"m",
		},
		{
			"falls back to high",
			Thumbnails{Default: "d", Standard: "s", High: "h"},
			"h",
		},
		{
			"falls back to standard",
			Thumbnails{Default: "d", Standard: "s"},
			"s",
		},
		{
			"default as last resort",
			Thumbnails{Default: "d"},
			"d",
		},
		{"all absent", Thumbnails{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.thumbs.BestURL(); got != tt.want {
				t.Errorf("BestURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
