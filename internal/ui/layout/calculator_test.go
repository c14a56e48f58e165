package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "header and footer",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 1},
			want:         38,
		},
		{
			name:         "window smaller than chrome",
			windowHeight: 1,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContentRow(t *testing.T) {
	if got := ContentRow(1); got != 2 {
		t.Errorf("ContentRow(1) = %d, want 2", got)
	}
	if got := ContentRow(0); got != 1 {
		t.Errorf("ContentRow(0) = %d, want 1", got)
	}
}

func TestPanelWidth(t *testing.T) {
	tests := []struct {
		name        string
		windowWidth int
		maxWidth    int
		want        int
	}{
		{"wide window", 120, 44, 44},
		{"narrow window keeps margins", 40, 44, 36},
		{"tiny window", 3, 44, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PanelWidth(tt.windowWidth, tt.maxWidth)
			if got != tt.want {
				t.Errorf("PanelWidth(%d, %d) = %d, want %d", tt.windowWidth, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{60, 44, 8},
		{61, 44, 8},
		{10, 10, 0},
		{10, 14, -2},
	}

	for _, tt := range tests {
		if got := CenterOffset(tt.total, tt.size); got != tt.want {
			t.Errorf("CenterOffset(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}
