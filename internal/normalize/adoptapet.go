package normalize

import (
	"encoding/json"
	"log"
)

// AdoptAPetNormalizer decodes the pet-search API envelope:
//
//	{"status": "ok", "pets": [...]}
//
// or, on API-level failure:
//
//	{"status": "error", "exception": {"msg": "...", "details": "..."}}
type AdoptAPetNormalizer struct{}

type adoptAPetEnvelope struct {
	Status    string            `json:"status"`
	Pets      []adoptAPetRecord `json:"pets"`
	Exception *adoptAPetProblem `json:"exception"`
}

type adoptAPetProblem struct {
	Msg     string `json:"msg"`
	Details string `json:"details"`
}

type adoptAPetRecord struct {
	PetID          string `json:"pet_id"`
	PetName        string `json:"pet_name"`
	Sex            string `json:"sex"`
	Age            string `json:"age"`
	Size           string `json:"size"`
	PrimaryBreed   string `json:"primary_breed"`
	SecondaryBreed string `json:"secondary_breed"`
	AddrCity       string `json:"addr_city"`
	Color          string `json:"color"`
	Species        string `json:"species"`
	LastModified   string `json:"last_modified"`

	ResultsPhotoURL      string `json:"results_photo_url"`
	LargeResultsPhotoURL string `json:"large_results_photo_url"`

	Breeds  *adoptAPetBreeds  `json:"breeds"`
	Contact *adoptAPetContact `json:"contact"`
	Photos  []adoptAPetPhoto  `json:"photos"`
}

type adoptAPetBreeds struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type adoptAPetContact struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type adoptAPetPhoto struct {
	URL  string `json:"url"`
	Size string `json:"size"`
}

func (n *AdoptAPetNormalizer) Kind() SourceKind {
	return SourceAdoptAPet
}

func (n *AdoptAPetNormalizer) Normalize(body []byte) ([]Animal, error) {
	var envelope adoptAPetEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &EnvelopeError{Kind: SourceAdoptAPet, Reason: err.Error()}
	}

	if envelope.Exception != nil {
		return nil, &EnvelopeError{Kind: SourceAdoptAPet, Reason: "API exception: " + envelope.Exception.Msg}
	}
	if envelope.Status != "ok" {
		return nil, &EnvelopeError{Kind: SourceAdoptAPet, Reason: "unexpected status: " + envelope.Status}
	}
	if envelope.Pets == nil {
		return nil, &EnvelopeError{Kind: SourceAdoptAPet, Reason: "missing pets collection"}
	}

	result := make([]Animal, 0, len(envelope.Pets))
	for i, pet := range envelope.Pets {
		if pet.PetID == "" && pet.PetName == "" {
			log.Printf("Normalize: skipping adoptapet record %d with no identifier or name", i)
			continue
		}
		result = append(result, n.toAnimal(pet))
	}

	return result, nil
}

func (n *AdoptAPetNormalizer) toAnimal(pet adoptAPetRecord) Animal {
	primaryBreed := pet.PrimaryBreed
	secondaryBreed := pet.SecondaryBreed
	if pet.Breeds != nil {
		if primaryBreed == "" {
			primaryBreed = pet.Breeds.Primary
		}
		if secondaryBreed == "" {
			secondaryBreed = pet.Breeds.Secondary
		}
	}

	city := pet.AddrCity
	if city == "" && pet.Contact != nil {
		city = pet.Contact.City
	}

	imageURL := pet.LargeResultsPhotoURL
	if imageURL == "" {
		imageURL = pet.ResultsPhotoURL
	}
	if imageURL == "" && len(pet.Photos) > 0 {
		imageURL = pet.Photos[0].URL
	}

	species := cleanSpecies(pet.Species)
	if species == "" {
		species = InferSpecies(imageURL, primaryBreed)
	}

	return Animal{
		ExternalID:     pet.PetID,
		Name:           pet.PetName,
		Species:        species,
		Sex:            pet.Sex,
		Size:           pet.Size,
		Age:            pet.Age,
		PrimaryBreed:   primaryBreed,
		SecondaryBreed: secondaryBreed,
		Color:          pet.Color,
		City:           city,
		ImageURL:       imageURL,
		LastModified:   parseLastModified(pet.LastModified),
	}
}
