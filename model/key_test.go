package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var track1 = TrackKey{Name: "Track1", AlbumName: "Album1", AlbumYear: "2022", AlbumAuthor: "john_doe"}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"user", UserKey{Login: "john_doe"}.String(), "user:john_doe"},
		{"user authors", UserKey{Login: "john_doe"}.AuthorsIndex(), "user:john_doe:authors"},
		{"user ratings", UserKey{Login: "john_doe"}.RatingsIndex(), "user:john_doe:ratings"},
		{"user listenings", UserKey{Login: "john_doe"}.ListeningsIndex(), "user:john_doe:listenings"},
		{"author", AuthorKey{User: "john_doe"}.String(), "author:john_doe"},
		{"author albums", AuthorKey{User: "john_doe"}.AlbumsIndex(), "author:john_doe:albums"},
		{"author info", AuthorInfoKey{Author: "john_doe"}.String(), "author_info:john_doe"},
		{"album", track1.Album().String(), "album:Album1:2022:john_doe"},
		{"album tracks", track1.Album().TracksIndex(), "album:Album1:2022:john_doe:tracks"},
		{"track", track1.String(), "track:Track1:Album1:2022:john_doe"},
		{"track ratings", track1.RatingsIndex(), "track:Track1:Album1:2022:john_doe:ratings"},
		{"track listenings", track1.ListeningsIndex(), "track:Track1:Album1:2022:john_doe:listenings"},
		{"rate", RateKey{Track: track1, UserLogin: "jane"}.String(), "rate:Track1:Album1:2022:john_doe:jane"},
		{"device", DeviceKey{MACAddress: "00:11:22:33:44:55"}.String(), "device:00:11:22:33:44:55"},
		{"device listenings", DeviceKey{MACAddress: "00:11"}.ListeningsIndex(), "device:00:11:listenings"},
		{
			"listening",
			ListeningKey{Track: track1, DeviceMACAddress: "00:11:22:33:44:55", UserLogin: "jane"}.String(),
			"listening:Track1:Album1:2022:john_doe:00:11:22:33:44:55:jane",
		},
		{"empty attribute", AlbumKey{Name: "", ReleaseYear: "2022", Author: "x"}.String(), "album::2022:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEntityKeysMatchKeyTypes(t *testing.T) {
	rate := &Rate{Track: track1, UserLogin: "jane", Rating: 3}
	assert.Equal(t, RateKey{Track: track1, UserLogin: "jane"}, rate.Key())

	tr := &Track{Name: "Track1", AlbumName: "Album1", AlbumYear: "2022", AlbumAuthor: "john_doe"}
	assert.Equal(t, track1, tr.Key())

	l := &Listening{Track: track1, DeviceMACAddress: "aa", UserLogin: "jane"}
	assert.Equal(t, "listening:Track1:Album1:2022:john_doe:aa:jane", l.Key().String())
}
