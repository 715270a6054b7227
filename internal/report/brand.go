package report

import (
	"log/slog"
	"strings"
)

// Brand is one of the two supported presentation presets. Immutable
// configuration data, selected per request by key; nothing here is
// ambient state.
type Brand struct {
	Key       string
	Name      string
	FirstLine string // first line of the cover title block
	Website   string
	Email     string
	LogoFile  string
	Watermark string
}

const DefaultBrandKey = "busivet"

var brands = map[string]Brand{
	"busivet": {
		Key:       "busivet",
		Name:      "BusiVet",
		FirstLine: "Vet Partners",
		Website:   "BUSIVET.COM.AU",
		Email:     "BEN@BUSIVET.COM.AU",
		LogoFile:  "busivet_logo.png",
		Watermark: "busivet_watermark.png",
	},
	"busihealth": {
		Key:       "busihealth",
		Name:      "BusiHealth",
		FirstLine: "Health Partners",
		Website:   "BUSIHEALTH.COM",
		Email:     "BEN@BUSIHEALTH.COM",
		LogoFile:  "busihealth_logo.png",
		Watermark: "busihealth_watermark.png",
	},
}

// ResolveBrand looks up the preset for key. Unrecognized keys fall
// back to the default preset rather than failing the request; the
// fallback is logged so silent misconfiguration still shows up.
func ResolveBrand(key string, logger *slog.Logger) Brand {
	if b, ok := brands[strings.ToLower(strings.TrimSpace(key))]; ok {
		return b
	}
	if logger != nil {
		logger.Warn("unrecognized brand key, using default",
			slog.String("key", key),
			slog.String("default", DefaultBrandKey))
	}
	return brands[DefaultBrandKey]
}

// KnownBrand reports whether key names one of the supported presets.
func KnownBrand(key string) bool {
	_, ok := brands[strings.ToLower(strings.TrimSpace(key))]
	return ok
}
