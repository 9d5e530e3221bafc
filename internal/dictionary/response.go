package dictionary

import (
	"encoding/json"
	"fmt"
)

// Response is the payload the dictionary service returns for one lookup.
// Fields the service omits decode to their zero values; an empty WordName
// means the service found nothing.
type Response struct {
	WordName  string     `json:"word_name"`
	Symbols   []Symbol   `json:"symbols"`
	Exchange  Exchange   `json:"exchange"`
	Sentences []Sentence `json:"sent"`
}

// Symbol groups phonetic transcriptions with the senses they cover.
type Symbol struct {
	PhoneticUS string `json:"ph_am"`
	PhoneticUK string `json:"ph_en"`
	Parts      []Part `json:"parts"`
}

// Part is one part of speech and its meanings.
type Part struct {
	Part  string   `json:"part"`
	Means []string `json:"means"`
}

// Exchange carries the morphological forms of the headword.
type Exchange struct {
	Plural            []string `json:"word_pl"`
	PresentParticiple []string `json:"word_ing"`
	PastParticiple    []string `json:"word_done"`
	PastTense         []string `json:"word_past"`
	ThirdPerson       []string `json:"word_third"`
	Comparative       []string `json:"word_er"`
	Superlative       []string `json:"word_est"`
}

// UnmarshalJSON tolerates the empty array the service sends in place of
// the exchange object when a word has no forms.
func (e *Exchange) UnmarshalJSON(data []byte) error {
	type exchange Exchange
	var x exchange
	if err := json.Unmarshal(data, &x); err != nil {
		*e = Exchange{}
		return nil
	}
	*e = Exchange(x)
	return nil
}

// Sentence is one bilingual example pair.
type Sentence struct {
	Original    string `json:"orig"`
	Translation string `json:"trans"`
}

// Decode parses a raw response body.
func Decode(data []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &r, nil
}
