package validator

import (
	"testing"

	"foodboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Phone(t *testing.T) {
	v := New()

	valid := []string{"+77001234567", "87001234567", "+749512345678"}
	for _, phone := range valid {
		err := v.Validate(&dto.RegisterRequest{Phone: phone, Password: "secret123"})
		assert.NoError(t, err, "телефон %q должен проходить", phone)
	}

	invalid := []string{"12345", "abc", "+7-700-123-45-67", "+7700123456789012345"}
	for _, phone := range invalid {
		err := v.Validate(&dto.RegisterRequest{Phone: phone, Password: "secret123"})
		assert.Error(t, err, "телефон %q должен отклоняться", phone)
	}
}

func TestValidator_PostCategory(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c", Category: "Пироги"})
	assert.NoError(t, err)

	// Пустая категория допустима, сервис подставит "Другое"
	err = v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c"})
	assert.NoError(t, err)

	err = v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c", Category: "Электроника"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "category")
}

func TestValidator_RadiusBounds(t *testing.T) {
	v := New()

	zero := 0
	assert.NoError(t, v.Validate(&dto.UpdateRadiusRequest{NotificationRadius: &zero}))

	max := 100000
	assert.NoError(t, v.Validate(&dto.UpdateRadiusRequest{NotificationRadius: &max}))

	negative := -1
	assert.Error(t, v.Validate(&dto.UpdateRadiusRequest{NotificationRadius: &negative}))

	tooBig := 100001
	assert.Error(t, v.Validate(&dto.UpdateRadiusRequest{NotificationRadius: &tooBig}))

	assert.Error(t, v.Validate(&dto.UpdateRadiusRequest{}), "радиус обязателен")
}

func TestValidator_Coordinates(t *testing.T) {
	v := New()

	lat, lon := 53.2211, 50.6257
	assert.NoError(t, v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c", Lat: &lat, Lon: &lon}))

	badLat := 91.0
	assert.Error(t, v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c", Lat: &badLat, Lon: &lon}))

	badLon := 181.0
	assert.Error(t, v.Validate(&dto.CreatePostRequest{Title: "t", Contact: "c", Lat: &lat, Lon: &badLon}))
}
