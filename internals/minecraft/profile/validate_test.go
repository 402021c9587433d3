package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validProfile = `{
  "id": "069a79f444e94726a5befca90e38aaf5",
  "name": "Notch",
  "skins": [
    {"id": "s1", "state": "ACTIVE", "url": "http://textures.minecraft.net/texture/1", "textureKey": "1", "variant": "CLASSIC"}
  ],
  "capes": [
    {"id": "c1", "state": "INACTIVE", "url": "http://textures.minecraft.net/texture/2", "alias": "Migrator"}
  ]
}`

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, validateProfile([]byte(validProfile)))
	assert.NoError(t, validateProfile([]byte(`{"id":"a","name":"b","skins":[],"capes":[]}`)))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing id", `{"name":"b","skins":[],"capes":[]}`, `profile: field "id" is required`},
		{"number name", `{"id":"a","name":1,"skins":[],"capes":[]}`, `profile: field "name" must be a string`},
		{"null skins", `{"id":"a","name":"b","skins":null,"capes":[]}`, `profile: field "skins" must be an array`},
		{"skin not object", `{"id":"a","name":"b","skins":["x"],"capes":[]}`, `profile: skin: "skins.0" must be an object`},
		{
			"skin missing variant",
			`{"id":"a","name":"b","skins":[{"id":"s","state":"ACTIVE","url":"u","textureKey":"k"}],"capes":[]}`,
			`profile: skin: field "skins.0.variant" is required`,
		},
		{
			"cape alias wrong type",
			`{"id":"a","name":"b","skins":[],"capes":[{"id":"c","state":"ACTIVE","url":"u","alias":false}]}`,
			`profile: cape: field "capes.0.alias" must be a string`,
		},
		{"array root", `[]`, `profile: expected an object`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, validateProfile([]byte(tt.body)), tt.want)
		})
	}
}

func TestValidateNameChange(t *testing.T) {
	assert.NoError(t, validateNameChange([]byte(`{"createdAt":"2020-01-01T00:00:00Z","nameChangeAllowed":true}`)))
	assert.NoError(t, validateNameChange([]byte(`{"createdAt":"2020-01-01T00:00:00Z","changedAt":"2021-01-01T00:00:00Z","nameChangeAllowed":false}`)))

	assert.EqualError(t,
		validateNameChange([]byte(`{"createdAt":"2020-01-01T00:00:00Z","nameChangeAllowed":"yes"}`)),
		`name change: field "nameChangeAllowed" must be a boolean`,
	)
	assert.EqualError(t,
		validateNameChange([]byte(`{"createdAt":"2020-01-01T00:00:00Z","changedAt":null,"nameChangeAllowed":true}`)),
		`name change: field "changedAt" must be a string`,
	)
	assert.EqualError(t,
		validateNameChange([]byte(`{"nameChangeAllowed":true}`)),
		`name change: field "createdAt" is required`,
	)
}

func TestValidateProfileNestedPaths(t *testing.T) {
	body := `{"id":"a","name":"b","skins":[
		{"id":"s1","state":"ACTIVE","url":"u","textureKey":"k","variant":"CLASSIC"},
		{"id":"s2","state":"INACTIVE","url":"u","textureKey":"k","variant":3}
	],"capes":[]}`
	assert.EqualError(t, validateProfile([]byte(body)), `profile: skin: field "skins.1.variant" must be a string`)

	body = `{"id":"a","name":"b","skins":[],"capes":[{"id":"c","state":"ACTIVE","alias":"Migrator"}]}`
	assert.EqualError(t, validateProfile([]byte(body)), `profile: cape: field "capes.0.url" is required`)
}
