package model

import "strings"

// KeySeparator joins the prefix and natural-key attributes of every key.
const KeySeparator = ":"

// Key prefixes, one per entity type.
const (
	userPrefix       = "user"
	authorPrefix     = "author"
	authorInfoPrefix = "author_info"
	albumPrefix      = "album"
	trackPrefix      = "track"
	ratePrefix       = "rate"
	devicePrefix     = "device"
	listeningPrefix  = "listening"
)

// Index relation names appended to a parent key.
const (
	authorsRelation    = "authors"
	albumsRelation     = "albums"
	tracksRelation     = "tracks"
	ratingsRelation    = "ratings"
	listeningsRelation = "listenings"
)

// joinKey builds a composite key. Attributes are used verbatim, so an
// attribute containing the separator or an empty attribute yields a
// different (possibly colliding) key.
func joinKey(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// UserKey identifies a user.
type UserKey struct {
	Login string
}

func (k UserKey) String() string { return joinKey(userPrefix, k.Login) }

// AuthorsIndex is the set of author keys owned by the user.
func (k UserKey) AuthorsIndex() string { return joinKey(k.String(), authorsRelation) }

// RatingsIndex is the set of rate keys left by the user.
func (k UserKey) RatingsIndex() string { return joinKey(k.String(), ratingsRelation) }

// ListeningsIndex is the set of listening keys recorded for the user.
func (k UserKey) ListeningsIndex() string { return joinKey(k.String(), listeningsRelation) }

// AuthorKey identifies an author by the login of the user behind it.
type AuthorKey struct {
	User string
}

func (k AuthorKey) String() string { return joinKey(authorPrefix, k.User) }

// AlbumsIndex is the set of album keys by the author.
func (k AuthorKey) AlbumsIndex() string { return joinKey(k.String(), albumsRelation) }

// AuthorInfoKey identifies the extended profile of an author.
type AuthorInfoKey struct {
	Author string
}

func (k AuthorInfoKey) String() string { return joinKey(authorInfoPrefix, k.Author) }

// AlbumKey identifies an album.
type AlbumKey struct {
	Name        string
	ReleaseYear string
	Author      string
}

func (k AlbumKey) String() string {
	return joinKey(albumPrefix, k.Name, k.ReleaseYear, k.Author)
}

// TracksIndex is the set of track keys on the album.
func (k AlbumKey) TracksIndex() string { return joinKey(k.String(), tracksRelation) }

// TrackKey identifies a track within its album.
type TrackKey struct {
	Name        string
	AlbumName   string
	AlbumYear   string
	AlbumAuthor string
}

func (k TrackKey) String() string {
	return joinKey(trackPrefix, k.Name, k.AlbumName, k.AlbumYear, k.AlbumAuthor)
}

// Album returns the key of the album the track belongs to.
func (k TrackKey) Album() AlbumKey {
	return AlbumKey{Name: k.AlbumName, ReleaseYear: k.AlbumYear, Author: k.AlbumAuthor}
}

// RatingsIndex is the set of rate keys for the track.
func (k TrackKey) RatingsIndex() string { return joinKey(k.String(), ratingsRelation) }

// ListeningsIndex is the set of listening keys for the track.
func (k TrackKey) ListeningsIndex() string { return joinKey(k.String(), listeningsRelation) }

// trackParts lists the track attributes in key order.
func (k TrackKey) trackParts() []string {
	return []string{k.Name, k.AlbumName, k.AlbumYear, k.AlbumAuthor}
}

// RateKey identifies one user's rating of one track.
type RateKey struct {
	Track     TrackKey
	UserLogin string
}

func (k RateKey) String() string {
	parts := append([]string{ratePrefix}, k.Track.trackParts()...)
	return joinKey(append(parts, k.UserLogin)...)
}

// DeviceKey identifies a playback device.
type DeviceKey struct {
	MACAddress string
}

func (k DeviceKey) String() string { return joinKey(devicePrefix, k.MACAddress) }

// ListeningsIndex is the set of listening keys recorded on the device.
func (k DeviceKey) ListeningsIndex() string { return joinKey(k.String(), listeningsRelation) }

// ListeningKey identifies a listening of a track by a user on a device.
type ListeningKey struct {
	Track            TrackKey
	DeviceMACAddress string
	UserLogin        string
}

func (k ListeningKey) String() string {
	parts := append([]string{listeningPrefix}, k.Track.trackParts()...)
	return joinKey(append(parts, k.DeviceMACAddress, k.UserLogin)...)
}
