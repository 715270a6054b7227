package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBrand(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "busivet", key: "busivet", expected: "busivet"},
		{name: "busihealth", key: "busihealth", expected: "busihealth"},
		{name: "case insensitive", key: "BusiHealth", expected: "busihealth"},
		{name: "padded", key: "  busivet  ", expected: "busivet"},
		{name: "unknown falls back to default", key: "busidental", expected: DefaultBrandKey},
		{name: "empty falls back to default", key: "", expected: DefaultBrandKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ResolveBrand(tt.key, nil)
			assert.Equal(t, tt.expected, b.Key)
			assert.NotEmpty(t, b.Name)
			assert.NotEmpty(t, b.Website)
			assert.NotEmpty(t, b.Email)
		})
	}
}

func TestKnownBrand(t *testing.T) {
	assert.True(t, KnownBrand("busivet"))
	assert.True(t, KnownBrand("BUSIHEALTH"))
	assert.False(t, KnownBrand("busidental"))
	assert.False(t, KnownBrand(""))
}

func TestBrandPresets(t *testing.T) {
	vet := ResolveBrand("busivet", nil)
	assert.Equal(t, "Vet Partners", vet.FirstLine)
	assert.Equal(t, "BUSIVET.COM.AU", vet.Website)
	assert.Equal(t, "BEN@BUSIVET.COM.AU", vet.Email)

	health := ResolveBrand("busihealth", nil)
	assert.Equal(t, "Health Partners", health.FirstLine)
	assert.Equal(t, "BUSIHEALTH.COM", health.Website)
	assert.Equal(t, "BEN@BUSIHEALTH.COM", health.Email)
}
