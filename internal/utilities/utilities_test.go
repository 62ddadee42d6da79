package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobportal-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithHeader(header string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc.def", "abc.def", true},
		{"", "", false},
		{"Bearer ", "", false},
		{"Bearer    ", "", false},
		{"Basic abc.def", "", false},
	}
	for _, tc := range cases {
		token, err := ExtractBearerToken(contextWithHeader(tc.header))
		if tc.ok {
			assert.NoError(t, err, tc.header)
			assert.Equal(t, tc.token, token)
		} else {
			assert.EqualError(t, err, "Invalid authorization header", tc.header)
		}
	}
}

func TestExtractUser(t *testing.T) {
	c := contextWithHeader("")
	_, err := ExtractUser(c)
	assert.EqualError(t, err, "User information not provided")

	c.Set("user", "not a user")
	_, err = ExtractUser(c)
	assert.EqualError(t, err, "Failed to assert type")

	want := model.User{ID: uuid.New(), Role: model.RoleJobSeeker}
	c.Set("user", want)
	got, err := ExtractUser(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, VerifyPassword("correct horse", hash))
	assert.False(t, VerifyPassword("wrong horse", hash))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{model.RoleRecruiter, model.RoleAdmin}, model.RoleAdmin))
	assert.False(t, Contains([]string{model.RoleRecruiter}, model.RoleJobSeeker))
	assert.False(t, Contains([]string(nil), model.RoleAdmin))
	assert.True(t, Contains([]uint{3, 7}, uint(7)))
}
