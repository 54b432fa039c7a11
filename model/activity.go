package model

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidRating is returned when a rating falls outside MinRating..MaxRating.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Rate represents a user's rating of a track.
type Rate struct {
	Track     TrackKey `json:"track"`
	UserLogin string   `json:"userLogin"`
	Rating    int      `json:"rating"`
}

func (r *Rate) Key() RateKey { return RateKey{Track: r.Track, UserLogin: r.UserLogin} }

// Validate checks the rating range.
func (r *Rate) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, r.Rating)
	}
	return nil
}

func (r *Rate) Fields() Fields {
	f := trackRefFields(r.Track)
	f["user_login"] = r.UserLogin
	f["rating"] = strconv.Itoa(r.Rating)
	return f
}

// RateFromRecord decodes a stored rate.
func RateFromRecord(r Record) (*Rate, error) {
	rating, err := strconv.Atoi(r["rating"])
	if err != nil {
		return nil, fmt.Errorf("invalid stored rating %q: %w", r["rating"], err)
	}
	return &Rate{
		Track:     trackRefFromRecord(r),
		UserLogin: r["user_login"],
		Rating:    rating,
	}, nil
}

// Listening represents one playback of a track by a user on a device.
type Listening struct {
	Track            TrackKey `json:"track"`
	DeviceMACAddress string   `json:"deviceMacAddress"`
	UserLogin        string   `json:"userLogin"`
}

func (l *Listening) Key() ListeningKey {
	return ListeningKey{Track: l.Track, DeviceMACAddress: l.DeviceMACAddress, UserLogin: l.UserLogin}
}

func (l *Listening) Fields() Fields {
	f := trackRefFields(l.Track)
	f["device_mac_address"] = l.DeviceMACAddress
	f["user_login"] = l.UserLogin
	return f
}

// ListeningFromRecord decodes a stored listening.
func ListeningFromRecord(r Record) *Listening {
	return &Listening{
		Track:            trackRefFromRecord(r),
		DeviceMACAddress: r["device_mac_address"],
		UserLogin:        r["user_login"],
	}
}
