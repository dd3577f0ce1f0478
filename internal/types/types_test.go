package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pageza/diethub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestHealthProfileResponse(t *testing.T) {
	created := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	p := models.NewHealthProfile("user-1", created)
	p.ID = 7
	p.Height = ptr(200.0)
	p.Weight = ptr(100.0)
	p.UpdatedAt = models.DateOf(created.AddDate(0, 1, 0))

	resp := NewHealthProfileResponse(p)
	require.NotNil(t, resp.BMI)
	assert.InDelta(t, 25.0, *resp.BMI, 1e-9)
	assert.Equal(t, "Overweight", resp.BMICategory)
	assert.Equal(t, "2024-01-02", resp.CreatedAt)
	assert.Equal(t, "2024-02-02", resp.UpdatedAt)
}

func TestHealthProfileResponseWithoutBMI(t *testing.T) {
	p := models.NewHealthProfile("user-1", time.Now())
	p.Weight = ptr(70.0)

	body, err := json.Marshal(NewHealthProfileResponse(p))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "bmi")
	assert.Nil(t, decoded["bmi"])
	assert.NotContains(t, decoded, "bmiCategory")
	assert.Equal(t, "user-1", decoded["userId"])
}

func TestHealthProfileRequestApplyClearsOmittedFields(t *testing.T) {
	p := models.NewHealthProfile("user-1", time.Now())
	p.Gender = ptr("F")
	p.Allergies = ptr("peanuts")

	req := HealthProfileRequest{UserID: "user-1", Age: ptr(40)}
	req.Apply(p)

	assert.Equal(t, 40, *p.Age)
	assert.Nil(t, p.Gender)
	assert.Nil(t, p.Allergies)
}

func TestNewHealthProfileResponsesEmpty(t *testing.T) {
	body, err := json.Marshal(NewHealthProfileResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestRecipeRequestFields(t *testing.T) {
	req := RecipeRequest{Name: "Soup", Calories: ptr(200), Tags: ptr("vegan")}
	f := req.Fields()
	assert.Equal(t, "Soup", f.Name)
	assert.Equal(t, 200, *f.Calories)
	assert.Equal(t, "vegan", *f.Tags)
	assert.Nil(t, f.Description)
}
