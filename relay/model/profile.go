package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type RefineRequest struct {
	UserData *UserProfile `json:"user_data" binding:"required"`
}

type RefineResponse struct {
	Prompt string `json:"prompt"`
}

// UserProfile is what the setup form collects. Every field is optional.
type UserProfile struct {
	Name         OptionalText `json:"name"`
	Age          OptionalText `json:"age"`
	Vibe         OptionalText `json:"vibe"`
	LocationName OptionalText `json:"locationName"`
	Food         OptionalText `json:"food"`
	Country      OptionalText `json:"country"`
}

// OptionalText accepts a JSON string, number or bool. null and missing keys are absent.
type OptionalText struct {
	Value string
	Set   bool
}

func Text(s string) OptionalText {
	return OptionalText{Value: s, Set: true}
}

func (o OptionalText) Or(fallback string) string {
	if !o.Set {
		return fallback
	}
	return o.Value
}

func (o *OptionalText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = OptionalText{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*o = Text(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*o = Text(strconv.FormatBool(b))
		return nil
	}
	// objects and arrays are kept verbatim
	*o = Text(string(data))
	return nil
}

func (o OptionalText) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
