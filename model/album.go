package model

import "database/sql"

// Author 表示一个创作者，与用户一一对应
type Author struct {
	Name sql.NullString `json:"name"`
	User string         `json:"user"`
}

func (a *Author) Key() AuthorKey { return AuthorKey{User: a.User} }

func (a *Author) Fields() Fields {
	return Fields{
		"name": nullToStore(a.Name),
		"user": a.User,
	}
}

// AuthorFromRecord decodes a stored author.
func AuthorFromRecord(r Record) *Author {
	return &Author{Name: nullFromStore(r["name"]), User: r["user"]}
}

// AuthorInfo 表示创作者的扩展资料
type AuthorInfo struct {
	Biography sql.NullString `json:"biography"`
	Awards    sql.NullString `json:"awards"`
	Photo     []byte         `json:"photo,omitempty"` // nil means no photo
	Author    string         `json:"author"`
}

func (i *AuthorInfo) Key() AuthorInfoKey { return AuthorInfoKey{Author: i.Author} }

// Fields does not include the author; it is only part of the key.
func (i *AuthorInfo) Fields() Fields {
	photo := i.Photo
	if photo == nil {
		photo = []byte{}
	}
	return Fields{
		"biography": nullToStore(i.Biography),
		"awards":    nullToStore(i.Awards),
		"photo":     photo,
	}
}

// AuthorInfoFromRecord decodes stored author info. The author comes from
// the key since the record does not store it.
func AuthorInfoFromRecord(author string, r Record) *AuthorInfo {
	info := &AuthorInfo{
		Biography: nullFromStore(r["biography"]),
		Awards:    nullFromStore(r["awards"]),
		Author:    author,
	}
	if photo := r["photo"]; photo != "" {
		info.Photo = []byte(photo)
	}
	return info
}

// Album 表示一张专辑
type Album struct {
	Name        string `json:"name"`
	ReleaseYear string `json:"releaseYear"`
	Author      string `json:"author"`
}

func (a *Album) Key() AlbumKey {
	return AlbumKey{Name: a.Name, ReleaseYear: a.ReleaseYear, Author: a.Author}
}

func (a *Album) Fields() Fields {
	return Fields{
		"name":         a.Name,
		"release_year": a.ReleaseYear,
		"author":       a.Author,
	}
}

// AlbumFromRecord decodes a stored album.
func AlbumFromRecord(r Record) *Album {
	return &Album{Name: r["name"], ReleaseYear: r["release_year"], Author: r["author"]}
}
