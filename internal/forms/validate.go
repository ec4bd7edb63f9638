package forms

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/bwdtc/bridgewater-dems/internal/model"
)

// Validate checks values against the field descriptors published in the site
// content, so editors changing a form also change what the server accepts.
// It returns a *model.ValidationError or nil.
func Validate(fields []model.FormField, values url.Values) error {
	verr := &model.ValidationError{}
	for _, f := range fields {
		v := strings.TrimSpace(values.Get(f.Name))
		if v == "" {
			if f.Required {
				verr.Add(f.Name, "is required")
			}
			continue
		}
		switch f.Type {
		case "email":
			if _, err := mail.ParseAddress(v); err != nil {
				verr.Add(f.Name, "must be a valid email address")
			}
		case "select":
			if len(f.Options) > 0 && !slices.Contains(f.Options, v) {
				verr.Add(f.Name, "must be one of the listed options")
			}
		}
	}
	return verr.OrNil()
}

// IsSpam reports whether the honeypot field was filled in.
func IsSpam(values url.Values) bool {
	return strings.TrimSpace(values.Get(FieldHoneypot)) != ""
}
