package enums

import "fmt"

// ContactChannel identifies the preferred way to reach a blogger.
type ContactChannel string

const (
	ContactChannelTelegram ContactChannel = "TELEGRAM"
	ContactChannelEmail    ContactChannel = "EMAIL"
	ContactChannelPhone    ContactChannel = "PHONE"
	ContactChannelOther    ContactChannel = "OTHER"
)

var validContactChannels = []ContactChannel{
	ContactChannelTelegram,
	ContactChannelEmail,
	ContactChannelPhone,
	ContactChannelOther,
}

// String implements fmt.Stringer.
func (c ContactChannel) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContactChannel.
func (c ContactChannel) IsValid() bool {
	for _, candidate := range validContactChannels {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactChannel converts raw input into a ContactChannel.
func ParseContactChannel(value string) (ContactChannel, error) {
	for _, candidate := range validContactChannels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact channel %q", value)
}
