package flex

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID       ID      `json:"id"`
	Name     Text    `json:"name"`
	Amount   Number  `json:"amount"`
	Services Strings `json:"services"`
}

func TestDecode_AcceptsLooseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want sample
	}{
		{
			name: "well typed",
			body: `{"id": 12, "name": "Juan", "amount": 90.5, "services": ["Corte", "Barba"]}`,
			want: sample{
				ID:       "12",
				Name:     "Juan",
				Amount:   NewNumber(mustDecimal(t, "90.5")),
				Services: NewStrings("Corte", "Barba"),
			},
		},
		{
			name: "numbers as text",
			body: `{"id": "12", "name": 7, "amount": "90.50"}`,
			want: sample{
				ID:     "12",
				Name:   "7",
				Amount: NewNumber(mustDecimal(t, "90.50")),
			},
		},
		{
			name: "wrong shapes",
			body: `{"id": {"x": 1}, "name": ["a"], "amount": "abc", "services": "Corte"}`,
			want: sample{
				Services: Strings{Malformed: true},
			},
		},
		{
			name: "nulls",
			body: `{"id": null, "name": null, "amount": null, "services": null}`,
			want: sample{},
		},
		{
			name: "mixed array",
			body: `{"services": ["Corte", 3, {"n": 1}, "", true]}`,
			want: sample{
				Services: Strings{Items: []string{"Corte", "3"}, Present: true, Malformed: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sample
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))

			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Amount.Valid, got.Amount.Valid)
			if tt.want.Amount.Valid {
				assert.True(t, tt.want.Amount.Value.Equal(got.Amount.Value))
			}
			assert.Equal(t, tt.want.Services, got.Services)
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "7", CanonicalKey("7"))
	assert.Equal(t, "7", CanonicalKey(" 07 "))
	assert.Equal(t, "7", CanonicalKey("7.0"))
	assert.Equal(t, "abc", CanonicalKey(" ABC "))
	assert.Equal(t, "", CanonicalKey("   "))
	assert.Equal(t, ID("7").Key(), ID("007").Key())
}

func TestNumber_MarshalRoundTrip(t *testing.T) {
	in := sample{Amount: NewNumber(mustDecimal(t, "12.34")), Services: NewStrings("Corte")}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, json.Unmarshal(b, &out))

	assert.True(t, out.Amount.Valid)
	assert.True(t, in.Amount.Value.Equal(out.Amount.Value))
	assert.Equal(t, []string{"Corte"}, out.Services.Items)
	assert.True(t, out.ID.IsZero())
}

func TestText_Or(t *testing.T) {
	assert.Equal(t, "N/A", Text("  ").Or("N/A"))
	assert.Equal(t, "Ana", Text(" Ana ").Or("N/A"))
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
