package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	const (
		cdn = "https://cdn.harbor.example"
		api = "https://acct.r2.cloudflarestorage.com"
	)

	tests := []struct {
		name     string
		public   string
		endpoint string
		url      string
		want     string
	}{
		{name: "public url", public: cdn, url: cdn + "/room/a.jpg", want: "room/a.jpg"},
		{name: "public url with bucket", public: cdn, url: cdn + "/media/room/a.jpg", want: "room/a.jpg"},
		{name: "path style api url", public: cdn, endpoint: api, url: api + "/media/spa/b.png", want: "spa/b.png"},
		{name: "foreign host", public: cdn, endpoint: api, url: "https://elsewhere.example/room/a.jpg"},
		{name: "nothing configured", url: "/room/a.jpg"},
		{name: "bare domain", public: cdn, url: cdn + "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyFromURL(tt.public, tt.endpoint, "media", tt.url))
		})
	}
}
