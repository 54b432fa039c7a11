package model

// User represents a listener account, identified by its login.
type User struct {
	Login string `json:"login"`
}

func (u *User) Key() UserKey { return UserKey{Login: u.Login} }

func (u *User) Fields() Fields {
	return Fields{"login": u.Login}
}

// UserFromRecord decodes a stored user.
func UserFromRecord(r Record) *User {
	return &User{Login: r["login"]}
}

// Device represents a playback device, identified by its MAC address.
type Device struct {
	MACAddress string `json:"macAddress"`
}

func (d *Device) Key() DeviceKey { return DeviceKey{MACAddress: d.MACAddress} }

func (d *Device) Fields() Fields {
	return Fields{"mac_address": d.MACAddress}
}

// DeviceFromRecord decodes a stored device.
func DeviceFromRecord(r Record) *Device {
	return &Device{MACAddress: r["mac_address"]}
}
