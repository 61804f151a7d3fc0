// Package messages holds the user-facing strings of the front end.
// Strings live in embedded go-i18n message files; code refers to them by ID.
package messages

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// ID names one message in the catalog.
type ID string

const (
	Generic = ID("Errors.Generic")

	ActivityTitleTooShort = ID("Activity.Errors.TitleTooShort")
	ActivityInvalidDate   = ID("Activity.Errors.InvalidDate")
	ActivityOutsideTrip   = ID("Activity.Errors.OutsideTrip")

	LinkTitleTooShort = ID("Link.Errors.TitleTooShort")
	LinkInvalidURL    = ID("Link.Errors.InvalidURL")

	InviteInvalidEmail = ID("Invite.Errors.InvalidEmail")

	TripDestinationTooShort = ID("Trip.Errors.DestinationTooShort")
	TripInvalidDates        = ID("Trip.Errors.InvalidDates")
	TripOwnerNameTooShort   = ID("Trip.Errors.OwnerNameTooShort")
	TripInvalidEmail        = ID("Trip.Errors.InvalidEmail")
)

// DefaultLanguage is the only language the front end ships.
var DefaultLanguage = language.BrazilianPortuguese

//go:embed locales/*.json
var localesFS embed.FS

// Catalog resolves message IDs to display strings.
// It is safe for concurrent use once constructed.
type Catalog struct {
	localizer *i18n.Localizer
}

// Load builds a Catalog from the embedded message files.
func Load() (*Catalog, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("messages.Load: read locales: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		data, err := localesFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("messages.Load: read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("messages.Load: parse %s: %w", p, err)
		}
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, DefaultLanguage.String())}, nil
}

// MustLoad is Load for program start-up; it panics on a broken catalog.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Text returns the display string for id. A missing ID returns the ID itself
// so a typo shows up on the page instead of an empty string.
func (c *Catalog) Text(id ID) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: string(id)})
	if err != nil || s == "" {
		return string(id)
	}
	return s
}

// MonthShort returns the abbreviated month name, e.g. "jun".
func (c *Catalog) MonthShort(m time.Month) string {
	return c.Text(ID("Month.Short." + strconv.Itoa(int(m))))
}

// Weekday returns the full weekday name, e.g. "sábado".
func (c *Catalog) Weekday(d time.Weekday) string {
	return c.Text(ID("Weekday." + strconv.Itoa(int(d))))
}
