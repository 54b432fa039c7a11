package repository

import "github.com/redis/go-redis/v9"

// Catalog bundles the repositories of every catalog entity over one store.
type Catalog struct {
	Users      UserRepository
	Authors    AuthorRepository
	Albums     AlbumRepository
	Tracks     TrackRepository
	Rates      RateRepository
	Devices    DeviceRepository
	Listenings ListeningRepository
}

// NewCatalog wires all repositories to client.
func NewCatalog(client redis.Cmdable) *Catalog {
	return &Catalog{
		Users:      NewRedisUserRepository(client),
		Authors:    NewRedisAuthorRepository(client),
		Albums:     NewRedisAlbumRepository(client),
		Tracks:     NewRedisTrackRepository(client),
		Rates:      NewRedisRateRepository(client),
		Devices:    NewRedisDeviceRepository(client),
		Listenings: NewRedisListeningRepository(client),
	}
}
