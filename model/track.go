package model

import "database/sql"

// Track represents a track on an album. A track that remixes another one
// carries the remixed track's identity in the Remix fields.
type Track struct {
	Name             string         `json:"name"`
	AlbumName        string         `json:"albumName"`
	AlbumYear        string         `json:"albumYear"`
	AlbumAuthor      string         `json:"albumAuthor"`
	RemixName        sql.NullString `json:"remixName"`
	RemixAlbumName   sql.NullString `json:"remixAlbumName"`
	RemixAlbumYear   sql.NullString `json:"remixAlbumYear"`
	RemixAlbumAuthor sql.NullString `json:"remixAlbumAuthor"`
}

func (t *Track) Key() TrackKey {
	return TrackKey{
		Name:        t.Name,
		AlbumName:   t.AlbumName,
		AlbumYear:   t.AlbumYear,
		AlbumAuthor: t.AlbumAuthor,
	}
}

func (t *Track) Fields() Fields {
	return Fields{
		"name":               t.Name,
		"album_name":         t.AlbumName,
		"album_year":         t.AlbumYear,
		"album_author":       t.AlbumAuthor,
		"remix_name":         nullToStore(t.RemixName),
		"remix_album_name":   nullToStore(t.RemixAlbumName),
		"remix_album_year":   nullToStore(t.RemixAlbumYear),
		"remix_album_author": nullToStore(t.RemixAlbumAuthor),
	}
}

// TrackFromRecord decodes a stored track.
func TrackFromRecord(r Record) *Track {
	return &Track{
		Name:             r["name"],
		AlbumName:        r["album_name"],
		AlbumYear:        r["album_year"],
		AlbumAuthor:      r["album_author"],
		RemixName:        nullFromStore(r["remix_name"]),
		RemixAlbumName:   nullFromStore(r["remix_album_name"]),
		RemixAlbumYear:   nullFromStore(r["remix_album_year"]),
		RemixAlbumAuthor: nullFromStore(r["remix_album_author"]),
	}
}

// trackRefFields are the track_* fields shared by rates and listenings.
func trackRefFields(k TrackKey) Fields {
	return Fields{
		"track_name":         k.Name,
		"track_album_name":   k.AlbumName,
		"track_album_year":   k.AlbumYear,
		"track_album_author": k.AlbumAuthor,
	}
}

func trackRefFromRecord(r Record) TrackKey {
	return TrackKey{
		Name:        r["track_name"],
		AlbumName:   r["track_album_name"],
		AlbumYear:   r["track_album_year"],
		AlbumAuthor: r["track_album_author"],
	}
}
