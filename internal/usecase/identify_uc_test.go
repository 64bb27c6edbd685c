//go:build !integration

package usecase

import (
	"errors"
	"testing"

	"telegram-affiliate-bot/internal/domain"
)

func TestExtractProductID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "item path with digits",
			url:  "https://www.aliexpress.com/item/1005001234567890.html",
			want: "1005001234567890",
		},
		{
			name: "item path with trailing query",
			url:  "https://ar.aliexpress.com/item/4000123456789.html?spm=a2g0o",
			want: "4000123456789",
		},
		{
			name: "productId query parameter",
			url:  "https://www.aliexpress.com/gcp/300000512?productId=555001",
			want: "555001",
		},
		{
			name: "path rule wins over query parameter",
			url:  "https://www.aliexpress.com/item/111.html?productId=222",
			want: "111",
		},
		{
			name:    "no identifier anywhere",
			url:     "https://best.aliexpress.com/",
			wantErr: true,
		},
		{
			name:    "non-numeric item segment",
			url:     "https://www.aliexpress.com/item/abc.html",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractProductID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrIdentifierNotFound) {
					t.Fatalf("expected ErrIdentifierNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractProductID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
