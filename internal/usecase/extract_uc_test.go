//go:build !integration

package usecase

import "testing"

func TestLinkExtractor_Extract(t *testing.T) {
	e := NewLinkExtractor()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "plain https link",
			text:   "check this out https://aliexpress.com/item/1005001234567890.html please",
			want:   "https://aliexpress.com/item/1005001234567890.html",
			wantOK: true,
		},
		{
			name:   "http link",
			text:   "http://a.aliexpress.com/_mtV0j3q",
			want:   "http://a.aliexpress.com/_mtV0j3q",
			wantOK: true,
		},
		{
			name:   "www token without scheme",
			text:   "see www.aliexpress.com/item/123.html now",
			want:   "www.aliexpress.com/item/123.html",
			wantOK: true,
		},
		{
			name:   "first of several links wins",
			text:   "https://first.example/a https://second.example/b",
			want:   "https://first.example/a",
			wantOK: true,
		},
		{
			name:   "no url at all",
			text:   "hello, how are you?",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "scheme-like word is not a link",
			text:   "the https standard is nice",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Extract(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
